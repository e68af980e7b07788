package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// errorResponse is the envelope every failure is reported in.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// corsMiddleware wraps rs/cors for gin so browser dashboards can call the
// API directly.
func corsMiddleware() gin.HandlerFunc {
	handler := cors.AllowAll()
	return func(c *gin.Context) {
		handler.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// recoveryMiddleware turns panics into the standard error envelope.
func recoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "an unexpected error occurred"
		if err, ok := recovered.(string); ok {
			msg = err
		}
		fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", msg)
		c.Abort()
	})
}
