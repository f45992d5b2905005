// Package handler provides HTTP handlers for seller endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sales_dashboard/internal/seller/service"
)

// Handler handles HTTP requests for seller endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new seller handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// ListSellers handles GET /sellers request.
// @Summary List sellers with their team, sorted by name
// @Tags Sellers
// @Produce json
// @Success 200 {array} model.SellerResponse
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /sellers [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) ListSellers(c *gin.Context) {
	sellers, err := h.service.ListSellers(c.Request.Context())
	if err != nil {
		errorResponse(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, sellers)
}
