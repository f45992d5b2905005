package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Messages returned by write operations.
const (
	MessageSaleRecorded = "Venda registrada com sucesso"
	MessageDemoSeeded   = "Dados de exemplo adicionados com sucesso"
)

// RecordSaleRequest represents the request to record a sale.
// OccurredAt defaults to the current instant when absent.
type RecordSaleRequest struct {
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	SellerID    string           `json:"seller_id" binding:"required"`
	TeamID      string           `json:"team_id" binding:"required"`
	Description *string          `json:"description,omitempty"`
	OccurredAt  *time.Time       `json:"occurred_at,omitempty"`
}

// AmountScale is the number of decimal places stored for an amount.
const AmountScale = 2

// Validate reports the first missing or invalid field. Presence is also
// enforced by the binding tags; Validate covers callers that skip binding,
// blank identifiers and the amount's sign and scale.
func (r *RecordSaleRequest) Validate() error {
	switch {
	case r.Amount == nil:
		return ErrAmountRequired
	case r.Amount.IsNegative():
		return ErrNegativeAmount
	case !r.Amount.Equal(r.Amount.Truncate(AmountScale)):
		return ErrAmountScale
	case strings.TrimSpace(r.SellerID) == "":
		return ErrSellerRequired
	case strings.TrimSpace(r.TeamID) == "":
		return ErrTeamRequired
	}
	return nil
}

// LegacyRecordSaleRequest is the body accepted by POST /api/vendas.
type LegacyRecordSaleRequest struct {
	Amount      *decimal.Decimal `json:"valor" binding:"required"`
	SellerID    string           `json:"vendedor_id" binding:"required"`
	TeamID      string           `json:"equipe_id" binding:"required"`
	Description *string          `json:"descricao,omitempty"`
	OccurredAt  *time.Time       `json:"data_venda,omitempty"`
}

// Normalize converts the legacy body into a RecordSaleRequest.
func (r LegacyRecordSaleRequest) Normalize() *RecordSaleRequest {
	return &RecordSaleRequest{
		Amount:      r.Amount,
		SellerID:    r.SellerID,
		TeamID:      r.TeamID,
		Description: r.Description,
		OccurredAt:  r.OccurredAt,
	}
}

// RecordSaleResponse represents the response after recording a sale.
type RecordSaleResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SaleItem represents a sale in listings.
type SaleItem struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"valor"`
	SellerID    string    `json:"vendedor_id"`
	TeamID      string    `json:"equipe_id"`
	OccurredAt  time.Time `json:"data_venda"`
	Description *string   `json:"descricao"`
	SellerName  *string   `json:"vendedor_nome"`
	TeamName    *string   `json:"equipe_nome"`
}

// PeriodSalesResponse lists the sales of a period with their total and count.
type PeriodSalesResponse struct {
	Sales []SaleItem `json:"vendas"`
	Total float64    `json:"total"`
	Count int        `json:"quantidade"`
}

// NewSaleItem maps a sale to its listing form, reading OccurredAt in loc.
func NewSaleItem(s Sale, loc *time.Location) SaleItem {
	return SaleItem{
		ID:          s.ID,
		Amount:      s.Amount.InexactFloat64(),
		SellerID:    s.SellerID,
		TeamID:      s.TeamID,
		OccurredAt:  s.OccurredAt.In(loc),
		Description: s.Description,
		SellerName:  s.SellerName,
		TeamName:    s.TeamName,
	}
}

// NewPeriodSalesResponse builds a period listing.
func NewPeriodSalesResponse(sales []Sale, total decimal.Decimal, loc *time.Location) *PeriodSalesResponse {
	items := make([]SaleItem, 0, len(sales))
	for _, s := range sales {
		items = append(items, NewSaleItem(s, loc))
	}
	return &PeriodSalesResponse{
		Sales: items,
		Total: total.InexactFloat64(),
		Count: len(items),
	}
}
