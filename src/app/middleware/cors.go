package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS answers preflight requests and allows the headers the API reads,
// including the X-User-Id actor header. An empty origin list allows any.
func CORS(origins ...string) gin.HandlerFunc {
	const (
		allowedMethods = "GET, POST, PATCH, PUT, DELETE, OPTIONS"
		maxAge         = "600"
	)
	allowedHeaders := strings.Join([]string{"Content-Type", UserIDHeader, RequestIDHeader}, ", ")

	return func(c *gin.Context) {
		origin := "*"
		if len(origins) > 0 {
			origin = ""
			reqOrigin := c.GetHeader("Origin")
			for _, o := range origins {
				if o == reqOrigin {
					origin = o
					break
				}
			}
			c.Header("Vary", "Origin")
		}
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", allowedMethods)
			c.Header("Access-Control-Allow-Headers", allowedHeaders)
			c.Header("Access-Control-Expose-Headers", RequestIDHeader)
			c.Header("Access-Control-Max-Age", maxAge)
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
