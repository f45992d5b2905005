// Package router provides sale module routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/clock"
	"github.com/festy23/sales_dashboard/internal/sale/handler"
	"github.com/festy23/sales_dashboard/internal/sale/repository"
	"github.com/festy23/sales_dashboard/internal/sale/service"
)

// RegisterRoutes registers sale module routes and their /api aliases.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, clk clock.Clock, loc *time.Location, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, clk, loc, logger)
	h := handler.New(svc, logger)

	r.POST("/sales", h.RecordSale)
	r.GET("/sales/day", h.SalesForDay)
	r.GET("/sales/week", h.SalesForWeek)
	r.GET("/sales/fortnight", h.SalesForFortnight)
	r.POST("/seed", h.SeedDemoData)

	api := r.Group("/api")
	api.POST("/vendas", h.RecordLegacySale)
	api.GET("/vendas/dia", h.SalesForDay)
	api.GET("/vendas/semana", h.SalesForWeek)
	api.GET("/vendas/quinzena", h.SalesForFortnight)
	api.POST("/seed", h.SeedDemoData)
}
