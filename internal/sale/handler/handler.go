// Package handler provides HTTP handlers for sale endpoints.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/festy23/sales_dashboard/internal/period"
	"github.com/festy23/sales_dashboard/internal/sale/model"
	"github.com/festy23/sales_dashboard/internal/sale/service"
)

// Handler handles HTTP requests for sale endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new sale handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// RecordSale handles POST /sales request.
// @Summary Record a sale
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body model.RecordSaleRequest true "Request"
// @Success 201 {object} model.RecordSaleResponse
// @Failure 400 {object} ErrorResponse "Missing amount, seller_id or team_id (VALIDATION_ERROR)"
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /sales [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) RecordSale(c *gin.Context) {
	var req model.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, h.logger, bindError(err))
		return
	}
	h.recordSale(c, &req)
}

// RecordLegacySale handles POST /api/vendas with the dashboard client's body
// ({valor, vendedor_id, equipe_id, descricao}).
func (h *Handler) RecordLegacySale(c *gin.Context) {
	var req model.LegacyRecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, h.logger, bindError(err))
		return
	}
	h.recordSale(c, req.Normalize())
}

// requiredFieldErrors maps request struct fields to their missing-field errors.
// Both request bodies share the Go field names.
var requiredFieldErrors = map[string]error{
	"Amount":   model.ErrAmountRequired,
	"SellerID": model.ErrSellerRequired,
	"TeamID":   model.ErrTeamRequired,
}

// bindError turns a binding failure into the first missing-field error,
// or ErrInvalidBody when the body could not be decoded.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if mapped, ok := requiredFieldErrors[fe.StructField()]; ok {
				return mapped
			}
		}
	}
	return model.ErrInvalidBody
}

func (h *Handler) recordSale(c *gin.Context, req *model.RecordSaleRequest) {
	resp, err := h.service.RecordSale(c.Request.Context(), req)
	if err != nil {
		errorResponse(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// SalesForDay handles GET /sales/day request.
// @Summary List today's sales with total and count
// @Tags Sales
// @Produce json
// @Success 200 {object} model.PeriodSalesResponse
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /sales/day [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SalesForDay(c *gin.Context) {
	h.salesFor(c, period.Day)
}

// SalesForWeek handles GET /sales/week request.
// @Summary List this week's sales (Sunday to Saturday) with total and count
// @Tags Sales
// @Produce json
// @Success 200 {object} model.PeriodSalesResponse
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /sales/week [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SalesForWeek(c *gin.Context) {
	h.salesFor(c, period.Week)
}

// SalesForFortnight handles GET /sales/fortnight request.
// @Summary List the last 15 days of sales with total and count
// @Tags Sales
// @Produce json
// @Success 200 {object} model.PeriodSalesResponse
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /sales/fortnight [get] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SalesForFortnight(c *gin.Context) {
	h.salesFor(c, period.Fortnight)
}

func (h *Handler) salesFor(c *gin.Context, kind period.Kind) {
	resp, err := h.service.SalesForPeriod(c.Request.Context(), kind)
	if err != nil {
		errorResponse(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SeedDemoData handles POST /seed request.
// @Summary Insert the demo dataset
// @Tags Sales
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /seed [post] //nolint:godot // Swagger annotation should not end with period
func (h *Handler) SeedDemoData(c *gin.Context) {
	resp, err := h.service.SeedDemoData(c.Request.Context())
	if err != nil {
		errorResponse(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
