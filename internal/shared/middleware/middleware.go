package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fyyur/internal/shared/constants"
	"fyyur/internal/shared/utils/response"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID reuses a well-formed incoming X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(constants.HEADER_REQUEST_ID)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(logger.RequestIDKey, id)
		c.Header(constants.HEADER_REQUEST_ID, id)
		c.Next()
	}
}

// RequestLogger logs one line per request once it has been served
func RequestLogger(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		l.LogHTTPRequest(c, time.Since(start))
	}
}

// Recovery turns a panic into a 500: JSON under the API prefix, the error
// page everywhere else.
func Recovery(apiPrefix string, page func(c *gin.Context)) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.GetDefault().LogHTTPError(c, fmt.Errorf("panic: %v", recovered), http.StatusInternalServerError)

		if page == nil || strings.HasPrefix(c.Request.URL.Path, apiPrefix) {
			response.RespondJSON(c, "error", http.StatusInternalServerError, "Internal server error", nil, nil)
			c.Abort()
			return
		}
		page(c)
		c.Abort()
	})
}
