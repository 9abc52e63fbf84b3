package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Overall and per-component health states.
const (
	StatusOK        = "ok"
	StatusDegraded  = "degraded"
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// HealthChecker is anything that can report its own reachability.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthService checks the API's dependencies (database, media storage).
type HealthService struct {
	log     *slog.Logger
	checks  map[string]HealthChecker
	timeout time.Duration
}

// NewHealthService registers checks by component name. Nil checkers are
// skipped so optional dependencies can be passed unconditionally.
func NewHealthService(log *slog.Logger, checks map[string]HealthChecker) *HealthService {
	filtered := make(map[string]HealthChecker, len(checks))
	for name, c := range checks {
		if c != nil {
			filtered[name] = c
		}
	}
	return &HealthService{log: log, checks: filtered, timeout: 3 * time.Second}
}

type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check queries every component in parallel, each under its own timeout.
// One failure degrades the whole report.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	report := &HealthStatus{
		Status:     StatusOK,
		Components: make(map[string]ComponentHealth, len(s.checks)),
	}

	var mu sync.Mutex
	var g errgroup.Group
	for name, checker := range s.checks {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()
			err := checker.Health(cctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log.Warn("health check failed", "component", name, "error", err)
				report.Status = StatusDegraded
				report.Components[name] = ComponentHealth{Status: StatusUnhealthy, Message: err.Error()}
				return nil
			}
			report.Components[name] = ComponentHealth{Status: StatusHealthy}
			return nil
		})
	}
	_ = g.Wait()

	return report
}
