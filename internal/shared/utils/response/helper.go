package response

import (
	"fyyur/internal/shared/apperr"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError writes err using its AppError status and details. Anything
// that is not an AppError, or carries a cause, is logged and answered with
// fallback as the message.
func RespondError(c *gin.Context, err error, fallback string) {
	code := apperr.StatusOf(err)
	ae := apperr.As(err)

	if ae == nil || ae.Cause != nil {
		logger.GetDefault().LogHTTPError(c, err, code)
	}
	if ae == nil {
		RespondJSON(c, "error", code, fallback, nil, nil)
		return
	}

	var details interface{}
	if len(ae.Details) > 0 {
		details = ae.Details
	}
	RespondJSON(c, "error", code, ae.Message, nil, details)
}
