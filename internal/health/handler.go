// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/clock"
	"github.com/festy23/sales_dashboard/internal/database/database"
)

const pingTimeout = 5 * time.Second

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	clock  clock.Clock
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, clk clock.Clock, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		clock:  clk,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status          string    `json:"status"`
	Database        string    `json:"database"`
	OpenConnections int       `json:"open_connections"`
	Time            time.Time `json:"time"`
}

// Check handles GET /health request.
// @Summary Store connectivity check
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Failure 503 {object} Response
// @Router /health [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	resp := Response{Time: h.clock.Now()}

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "error", err)
		resp.Status = "unhealthy"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	if stats, err := database.GetStats(h.db); err == nil {
		resp.OpenConnections = stats.OpenConnections
	}
	resp.Status = "ok"
	resp.Database = "up"
	c.JSON(http.StatusOK, resp)
}

// RegisterRoutes registers GET /health.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, clk clock.Clock, logger *zap.SugaredLogger) {
	h := New(db, clk, logger)
	r.GET("/health", h.Check)
}
