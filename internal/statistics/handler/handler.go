// Package handler provides HTTP handlers for statistics endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/sales_dashboard/internal/apperr"
	"github.com/festy23/sales_dashboard/internal/period"
	"github.com/festy23/sales_dashboard/internal/statistics/service"
)

// Handler handles HTTP requests for statistics endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new statistics handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		service: svc,
		logger:  logger,
	}
}

// FortnightProjection handles GET /projections/fortnight request.
// @Summary Project the trailing 15-day sales
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.FortnightProjectionResponse
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /projections/fortnight [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) FortnightProjection(c *gin.Context) {
	resp, err := h.service.FortnightProjection(c.Request.Context())
	if err != nil {
		errorResponse(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MonthProjection handles GET /projections/month request.
// @Summary Project month-to-date sales onto the whole month
// @Tags Statistics
// @Produce json
// @Success 200 {object} model.MonthProjectionResponse
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /projections/month [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) MonthProjection(c *gin.Context) {
	resp, err := h.service.MonthProjection(c.Request.Context())
	if err != nil {
		errorResponse(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SalesByTeam handles GET /sales/by-team request.
// @Summary Sales count, total and mean per team
// @Tags Statistics
// @Produce json
// @Param period query string false "day, week, fortnight or month; all time when omitted"
// @Success 200 {array} model.TeamSalesResponse
// @Failure 400 {object} ErrorResponse "Unknown period (VALIDATION_ERROR)"
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /sales/by-team [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SalesByTeam(c *gin.Context) {
	kind, ok := h.periodQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.SalesByTeam(c.Request.Context(), kind)
	if err != nil {
		errorResponse(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SalesBySeller handles GET /sales/by-seller request.
// @Summary Sales count, total and mean per seller
// @Tags Statistics
// @Produce json
// @Param period query string false "day, week, fortnight or month; all time when omitted"
// @Success 200 {array} model.SellerSalesResponse
// @Failure 400 {object} ErrorResponse "Unknown period (VALIDATION_ERROR)"
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /sales/by-seller [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SalesBySeller(c *gin.Context) {
	kind, ok := h.periodQuery(c)
	if !ok {
		return
	}

	resp, err := h.service.SalesBySeller(c.Request.Context(), kind)
	if err != nil {
		errorResponse(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// periodQuery reads ?period= (or the dashboard client's ?periodo=).
// It writes a 400 response and returns false when the value is unknown.
func (h *Handler) periodQuery(c *gin.Context) (*period.Kind, bool) {
	raw := c.Query("period")
	if raw == "" {
		raw = c.Query("periodo")
	}
	if raw == "" {
		return nil, true
	}

	kind, err := period.Parse(raw)
	if err != nil {
		errorResponse(c, h.logger, apperr.Validation(err.Error()))
		return nil, false
	}
	return &kind, true
}
