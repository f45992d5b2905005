// Package model provides data transfer objects for statistics module.
package model

import (
	"github.com/festy23/sales_dashboard/internal/aggregate"
	"github.com/festy23/sales_dashboard/internal/projection"
)

// FortnightProjectionResponse represents the fortnight projection.
type FortnightProjectionResponse struct {
	DailyRate    float64 `json:"mediaDiaria"`
	Projected    float64 `json:"projecaoQuinzena"`
	CurrentSales float64 `json:"vendasAtuais"`
}

// MonthProjectionResponse represents the month projection.
type MonthProjectionResponse struct {
	DailyRate    float64 `json:"mediaDiaria"`
	Projected    float64 `json:"projecaoMes"`
	CurrentSales float64 `json:"vendasAtuais"`
	DaysPassed   int     `json:"diasPassados"`
	DaysInMonth  int     `json:"diasNoMes"`
}

// TeamSalesResponse represents one team in the sales-by-team report.
type TeamSalesResponse struct {
	ID          string  `json:"id"`
	TeamName    string  `json:"equipe_nome"`
	SalesCount  int     `json:"quantidade_vendas"`
	TotalSales  float64 `json:"total_vendas"`
	AverageSale float64 `json:"media_venda"`
}

// SellerSalesResponse represents one seller in the sales-by-seller report.
// TeamName is null for sellers without a team.
type SellerSalesResponse struct {
	ID          string  `json:"id"`
	SellerName  string  `json:"vendedor_nome"`
	TeamName    *string `json:"equipe_nome"`
	SalesCount  int     `json:"quantidade_vendas"`
	TotalSales  float64 `json:"total_vendas"`
	AverageSale float64 `json:"media_venda"`
}

// NewFortnightProjectionResponse converts a fortnight projection.
func NewFortnightProjectionResponse(current projection.Result, total float64) *FortnightProjectionResponse {
	return &FortnightProjectionResponse{
		DailyRate:    current.DailyRate.InexactFloat64(),
		Projected:    current.Projected.InexactFloat64(),
		CurrentSales: total,
	}
}

// NewMonthProjectionResponse converts a month projection.
func NewMonthProjectionResponse(current projection.MonthResult, total float64) *MonthProjectionResponse {
	return &MonthProjectionResponse{
		DailyRate:    current.DailyRate.InexactFloat64(),
		Projected:    current.Projected.InexactFloat64(),
		CurrentSales: total,
		DaysPassed:   current.DaysPassed,
		DaysInMonth:  current.DaysInMonth,
	}
}

// NewTeamSalesResponses converts team groups, keeping order.
func NewTeamSalesResponses(groups []aggregate.Group) []TeamSalesResponse {
	resp := make([]TeamSalesResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, TeamSalesResponse{
			ID:          g.ID,
			TeamName:    g.Name,
			SalesCount:  g.Count,
			TotalSales:  g.Total.InexactFloat64(),
			AverageSale: g.Mean.InexactFloat64(),
		})
	}
	return resp
}

// NewSellerSalesResponses converts seller groups, keeping order.
func NewSellerSalesResponses(groups []aggregate.Group) []SellerSalesResponse {
	resp := make([]SellerSalesResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, SellerSalesResponse{
			ID:          g.ID,
			SellerName:  g.Name,
			TeamName:    g.TeamName,
			SalesCount:  g.Count,
			TotalSales:  g.Total.InexactFloat64(),
			AverageSale: g.Mean.InexactFloat64(),
		})
	}
	return resp
}
