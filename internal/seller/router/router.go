// Package router provides seller module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/seller/handler"
	"github.com/festy23/sales_dashboard/internal/seller/repository"
	"github.com/festy23/sales_dashboard/internal/seller/service"
)

// RegisterRoutes registers seller module routes.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/sellers", h.ListSellers)
	r.GET("/api/vendedores", h.ListSellers)
}
