package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"shootfed/src/app/http/response"
)

// Recovery turns a panic in any later handler into a generic 500 and logs
// the stack. Register it right after RequestID.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			requestID := GetRequestID(c)
			attrs := []any{
				"request_id", requestID,
				"error", rec,
				"method", c.Request.Method,
				"route", c.FullPath(),
			}
			if actor := GetActor(c); actor.UserID != "" {
				attrs = append(attrs, "user_id", actor.UserID)
			}
			log.Error("panic recovered", append(attrs, "stack", string(debug.Stack()))...)
			response.InternalError(c, requestID)
			c.Abort()
		}()

		c.Next()
	}
}
