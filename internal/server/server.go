// Package server assembles the HTTP router and runs the HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/clock"
	"github.com/festy23/sales_dashboard/internal/config"
	"github.com/festy23/sales_dashboard/internal/health"
	"github.com/festy23/sales_dashboard/internal/middleware"
	saleRouter "github.com/festy23/sales_dashboard/internal/sale/router"
	sellerRouter "github.com/festy23/sales_dashboard/internal/seller/router"
	statisticsRouter "github.com/festy23/sales_dashboard/internal/statistics/router"
	teamRouter "github.com/festy23/sales_dashboard/internal/team/router"
)

// Deps holds what the router needs. Clock and Location drive every period report.
type Deps struct {
	DB       *gorm.DB
	Clock    clock.Clock
	Location *time.Location
	Logger   *zap.SugaredLogger
	// AllowOrigins lists origins allowed by CORS.
	AllowOrigins []string
}

// NewRouter builds the gin engine with middleware and every feature's routes.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(deps.Logger),
		middleware.Recovery(deps.Logger),
		middleware.CORS(middleware.DefaultCORSConfig(deps.AllowOrigins)),
	)
	r.NoRoute(middleware.NotFound())

	health.RegisterRoutes(r, deps.DB, deps.Clock, deps.Logger)
	teamRouter.RegisterRoutes(r, deps.DB, deps.Logger)
	sellerRouter.RegisterRoutes(r, deps.DB, deps.Logger)
	saleRouter.RegisterRoutes(r, deps.DB, deps.Clock, deps.Location, deps.Logger)
	statisticsRouter.RegisterRoutes(r, deps.DB, deps.Clock, deps.Location, deps.Logger)

	return r
}

// Server wraps http.Server with graceful shutdown.
type Server struct {
	http            *http.Server
	shutdownTimeout time.Duration
	logger          *zap.SugaredLogger
}

// New creates a server for handler using the configured address and timeouts.
func New(cfg config.ServerConfig, handler http.Handler, logger *zap.SugaredLogger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         cfg.GetAddress(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests
// for at most the shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("Server starting", "address", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Infow("Shutting down server", "timeout", s.shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Infow("Server stopped")
	return nil
}
