package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// maxLoggedBody caps how much of a request or response body is logged.
	maxLoggedBody = 2048
	// maxBufferedBody caps how much of a JSON request body is held in
	// memory for logging. Larger bodies are summarized, not logged.
	maxBufferedBody = 64 << 10
)

// redactedKeys are JSON keys whose values never reach the log.
var redactedKeys = map[string]struct{}{
	"password":      {},
	"password_hash": {},
}

// Logging emits one line per request, at a level chosen by status code.
// JSON bodies are logged with credentials redacted; other bodies are
// summarized by content type and size.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if query := c.Request.URL.RawQuery; query != "" {
			path += "?" + query
		}

		var reqBody []byte
		if c.Request.Body != nil && isJSON(c.ContentType()) {
			reqBody = peekBody(c.Request)
		}

		rec := &responseCapture{ResponseWriter: c.Writer}
		c.Writer = rec

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"request_id", GetRequestID(c),
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if len(reqBody) > 0 && len(reqBody) <= maxBufferedBody {
			attrs = append(attrs, "request", loggableBody(reqBody))
		} else if c.Request.ContentLength > 0 {
			attrs = append(attrs, "request", c.ContentType(), "request_bytes", c.Request.ContentLength)
		}
		if rec.body.Len() > 0 {
			attrs = append(attrs, "response", loggableBody(rec.body.Bytes()))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("request", attrs...)
		case status >= 400:
			log.Warn("request", attrs...)
		default:
			log.Info("request", attrs...)
		}
	}
}

// peekBody reads up to maxBufferedBody+1 bytes of r's body and puts them
// back in front of the unread remainder, so handlers still see every byte.
func peekBody(r *http.Request) []byte {
	orig := r.Body
	head, _ := io.ReadAll(io.LimitReader(orig, maxBufferedBody+1))
	r.Body = replayBody{Reader: io.MultiReader(bytes.NewReader(head), orig), Closer: orig}
	return head
}

type replayBody struct {
	io.Reader
	io.Closer
}

func isJSON(contentType string) bool {
	return strings.HasSuffix(contentType, "json")
}

// loggableBody returns body as a string with credential values replaced.
// Bodies that are not JSON objects are logged as-is, truncated.
func loggableBody(body []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		changed := false
		for k := range obj {
			if _, ok := redactedKeys[k]; ok {
				obj[k] = json.RawMessage(`"[REDACTED]"`)
				changed = true
			}
		}
		if changed {
			if out, err := json.Marshal(obj); err == nil {
				body = out
			}
		}
	}
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "...(truncated)"
	}
	return string(body)
}

// responseCapture captures response body while delegating to original writer.
type responseCapture struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *responseCapture) Write(b []byte) (int, error) {
	if r.body.Len() < maxLoggedBody+1 {
		r.body.Write(b)
	}
	return r.ResponseWriter.Write(b)
}

func (r *responseCapture) WriteString(s string) (int, error) {
	if r.body.Len() < maxLoggedBody+1 {
		r.body.WriteString(s)
	}
	return r.ResponseWriter.WriteString(s)
}
