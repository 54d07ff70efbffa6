package http

import (
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/wimtiaz/user_registration_service/internal/core/domain"
	"github.com/wimtiaz/user_registration_service/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// AccessLogMiddleware logs every request with a generated request id and
// the final status code.
func AccessLogMiddleware(logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(requestIDHeader, requestID)

		c.Next()

		logger.Info("Request handled", map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"ip":         c.ClientIP(),
		})
	}
}

// RecoveryMiddleware turns panics into error envelopes. A nil dereference
// is reported as an unknown bad request: it is treated as bad input having
// reached deeper code, not as a server fault. Everything else is an
// unknown internal server error.
func RecoveryMiddleware(logger ports.LoggerPort, timestampLayout string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "unexpected failure"
		if err, ok := recovered.(error); ok {
			message = err.Error()
		} else if s, ok := recovered.(string); ok {
			message = s
		}

		logger.Error("Recovered from panic", map[string]interface{}{
			"error":  message,
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		})

		if isNilDereference(recovered) {
			newErrorResponse(c, http.StatusBadRequest, domain.CodeUnknownBadRequest,
				timestampLayout, []string{message}, "")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, domain.CodeUnknownInternalServerError,
			timestampLayout, []string{message}, "")
	})
}

func isNilDereference(recovered interface{}) bool {
	err, ok := recovered.(runtime.Error)
	if !ok {
		return false
	}
	return strings.Contains(err.Error(), "nil pointer dereference") ||
		strings.Contains(err.Error(), "nil map")
}
