package constants

// Key pattern: fyyur:{module}:{identifier}:{params?}
const (
	KEY_PREFIX            = "fyyur:"
	KEY_PREFIX_RATE_LIMIT = KEY_PREFIX + "ratelimit:"
)

// StartTimeLayout is how show start times are rendered, always in UTC
const StartTimeLayout = "2006-01-02 15:04:05"

// Header carrying the request id in and out
const HEADER_REQUEST_ID = "X-Request-ID"
