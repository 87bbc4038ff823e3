package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every error the API returns.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler turns a panic in a handler into a 500 with an ErrorResponse.
// Nothing in a purchase or schedule change is retried; the panic and the
// request id are logged so the half-finished request can be traced.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				GetLogger().Error("handler panic",
					zap.Any("panic", rec),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("requestId", c.Writer.Header().Get("X-Request-ID")),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "The cinema service hit an unexpected error. Please try again later.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError writes an ErrorResponse and logs client errors at warn level.
func JSONError(c *gin.Context, status int, message string, details string) {
	if status >= http.StatusInternalServerError {
		GetLogger().Error(message, zap.Int("status", status), zap.String("path", c.FullPath()), zap.String("details", details))
	} else {
		GetLogger().Warn(message, zap.Int("status", status), zap.String("path", c.FullPath()), zap.String("details", details))
	}
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
