package web

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"shootfed/src/app/middleware"
)

// maxBackendBody caps how much of a backend response is relayed.
const maxBackendBody = 10 << 20

// Proxy forwards public read routes to the API and relays its answers.
type Proxy struct {
	client  *http.Client
	backend string
	log     *slog.Logger
}

// NewProxy returns a Proxy for the API at backend, with one shared client
// bounded by timeout.
func NewProxy(backend string, timeout time.Duration, log *slog.Logger) *Proxy {
	return &Proxy{
		client:  &http.Client{Timeout: timeout},
		backend: strings.TrimRight(backend, "/"),
		log:     log,
	}
}

// NewsBySlug relays GET {backend}/news/slug/{slug}.
// GET /api/news/:slug
func (p *Proxy) NewsBySlug(c *gin.Context) {
	p.relay(c, "/news/slug/"+url.PathEscape(c.Param("slug")))
}

// Results relays GET {backend}/results with the inbound query string.
// GET /api/results
func (p *Proxy) Results(c *gin.Context) {
	path := "/results"
	if raw := c.Request.URL.RawQuery; raw != "" {
		path += "?" + raw
	}
	p.relay(c, path)
}

// relay writes the backend's status and JSON body unchanged. Transport
// failures and non-JSON bodies become a generic 500.
func (p *Proxy) relay(c *gin.Context, path string) {
	c.Header("Cache-Control", "no-store")

	status, body, err := p.fetch(c.Request.Context(), path, middleware.GetRequestID(c))
	if err != nil {
		p.log.Error("proxy request failed",
			"request_id", middleware.GetRequestID(c),
			"path", path,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Data(status, "application/json; charset=utf-8", body)
}

func (p *Proxy) fetch(ctx context.Context, path, requestID string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.backend+path, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	if requestID != "" {
		req.Header.Set(middleware.RequestIDHeader, requestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBackendBody))
	if err != nil {
		return 0, nil, fmt.Errorf("read backend body: %w", err)
	}
	if !json.Valid(body) {
		return 0, nil, fmt.Errorf("backend answered %d with a non-JSON body", resp.StatusCode)
	}
	return resp.StatusCode, body, nil
}
