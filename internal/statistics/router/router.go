// Package router provides statistics module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/clock"
	"github.com/festy23/sales_dashboard/internal/statistics/handler"
	"github.com/festy23/sales_dashboard/internal/statistics/repository"
	"github.com/festy23/sales_dashboard/internal/statistics/service"
)

// RegisterRoutes registers statistics module routes and their /api aliases.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, clk clock.Clock, loc *time.Location, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, clk, loc, logger)
	h := handler.New(svc, logger)

	r.GET("/projections/fortnight", h.FortnightProjection)
	r.GET("/projections/month", h.MonthProjection)
	r.GET("/sales/by-team", h.SalesByTeam)
	r.GET("/sales/by-seller", h.SalesBySeller)

	api := r.Group("/api")
	api.GET("/projecao/quinzena", h.FortnightProjection)
	api.GET("/projecao/mes", h.MonthProjection)
	api.GET("/vendas/equipe", h.SalesByTeam)
	api.GET("/vendas/vendedor", h.SalesBySeller)
}
