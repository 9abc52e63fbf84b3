package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shootfed/src/core/usecase"
)

// HealthHandler serves the liveness and dependency checks. The web server
// mounts it with a nil service and only uses Health.
type HealthHandler struct {
	checks *usecase.HealthService
}

func NewHealthHandler(checks *usecase.HealthService) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthResponse is the liveness body.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health answers as long as the process can serve requests.
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: usecase.StatusOK})
}

// DetailedHealth checks every registered dependency; a degraded result
// is served as 503 so load balancers drain the instance.
// GET /health/detailed
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	if h.checks == nil {
		h.Health(c)
		return
	}
	report := h.checks.Check(c.Request.Context())
	if report.Status != usecase.StatusOK {
		c.JSON(http.StatusServiceUnavailable, report)
		return
	}
	c.JSON(http.StatusOK, report)
}
