// Package web is the public frontend server. It serves a small set of
// read routes by proxying them to the API.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"shootfed/src/app/http/handler"
	"shootfed/src/app/middleware"
	"shootfed/src/infra/config"
)

// Server is the frontend HTTP server.
type Server struct {
	cfg    *config.Config
	log    *slog.Logger
	router *gin.Engine
	http   *http.Server
}

func New(cfg *config.Config, log *slog.Logger) *Server {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log))

	proxy := NewProxy(cfg.Web.BackendURL, cfg.Web.ProxyTimeout, log)
	health := handler.NewHealthHandler(nil)

	router.GET("/health", health.Health)
	api := router.Group("/api")
	api.GET("/news/:slug", proxy.NewsBySlug)
	api.GET("/results", proxy.Results)

	return &Server{
		cfg:    cfg,
		log:    log,
		router: router,
		http: &http.Server{
			Addr:         cfg.Web.Addr(),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting web server", "addr", s.cfg.Web.Addr(), "backend", s.cfg.Web.BackendURL)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("web server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("web server shutdown error: %w", err)
	}
	s.log.Info("web server stopped")
	return nil
}

// Router returns the Gin router for testing.
func (s *Server) Router() *gin.Engine {
	return s.router
}
