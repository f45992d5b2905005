// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/team/handler"
	"github.com/festy23/sales_dashboard/internal/team/repository"
	"github.com/festy23/sales_dashboard/internal/team/service"
)

// RegisterRoutes registers team module routes, including the /api alias
// used by the dashboard client.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, logger *zap.SugaredLogger) {
	repo := repository.New(db, logger)
	svc := service.New(repo, logger)
	h := handler.New(svc, logger)

	r.GET("/teams", h.ListTeams)
	r.GET("/api/equipes", h.ListTeams)
}
