package response

// StandardApiResponse is the envelope of every /api response
type StandardApiResponse struct {
	Status     string      `json:"status"`           // "success" or "error"
	StatusCode int         `json:"status_code"`      // HTTP status code
	Message    string      `json:"message"`          // Human-readable message
	Data       interface{} `json:"data,omitempty"`   // Payload for success
	Errors     interface{} `json:"errors,omitempty"` // Field errors for validation failures
}

// DeleteResult is the bare body the page-side delete endpoint answers with
type DeleteResult struct {
	Success bool `json:"success"`
}
