// Package service provides business logic layer for sale module.
package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/festy23/sales_dashboard/internal/aggregate"
	"github.com/festy23/sales_dashboard/internal/clock"
	"github.com/festy23/sales_dashboard/internal/period"
	"github.com/festy23/sales_dashboard/internal/sale/model"
	"github.com/festy23/sales_dashboard/internal/sale/repository"
)

// Service defines the interface for sale business logic operations.
type Service interface {
	// RecordSale validates and stores a sale.
	RecordSale(ctx context.Context, req *model.RecordSaleRequest) (*model.RecordSaleResponse, error)

	// SalesForPeriod lists the sales of the current day, week or fortnight.
	SalesForPeriod(ctx context.Context, kind period.Kind) (*model.PeriodSalesResponse, error)

	// SeedDemoData inserts the demo dataset with dates spread over the last 30 days.
	SeedDemoData(ctx context.Context) (*model.MessageResponse, error)
}

type service struct {
	repo     repository.Repository
	clock    clock.Clock
	loc      *time.Location
	logger   *zap.SugaredLogger
	randIntn func(n int) int
}

// New creates a new sale service instance. Period boundaries follow loc.
func New(repo repository.Repository, clk clock.Clock, loc *time.Location, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		clock:  clk,
		loc:    loc,
		logger: logger,
		// The top-level source is safe for concurrent seeds.
		//nolint:gosec // G404: demo dates need no cryptographic randomness
		randIntn: rand.IntN,
	}
}

// RecordSale validates and stores a sale.
func (s *service) RecordSale(ctx context.Context, req *model.RecordSaleRequest) (*model.RecordSaleResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	sale := &model.Sale{
		ID:          uuid.NewString(),
		Amount:      *req.Amount,
		SellerID:    strings.TrimSpace(req.SellerID),
		TeamID:      strings.TrimSpace(req.TeamID),
		OccurredAt:  occurredAt.UTC(),
		Description: req.Description,
		CreatedAt:   now.UTC(),
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	s.logger.Infow("sale recorded",
		"sale_id", sale.ID,
		"seller_id", sale.SellerID,
		"team_id", sale.TeamID,
		"amount", sale.Amount.String(),
	)

	return &model.RecordSaleResponse{ID: sale.ID, Message: model.MessageSaleRecorded}, nil
}

// SalesForPeriod lists the sales of kind containing the current instant.
func (s *service) SalesForPeriod(ctx context.Context, kind period.Kind) (*model.PeriodSalesResponse, error) {
	rng, err := period.Resolve(kind, s.clock.Now().In(s.loc))
	if err != nil {
		return nil, err
	}

	from, to := rng.Bounds()
	sales, err := s.repo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	summary := aggregate.Summarize(sales, rng)

	s.logger.Infow("period sales listed",
		"period", kind.String(),
		"range", rng.String(),
		"count", summary.Count,
		"total", summary.Total.String(),
	)

	return model.NewPeriodSalesResponse(summary.Items, summary.Total, s.loc), nil
}

type demoSale struct {
	amount      int64
	sellerID    string
	teamID      string
	description string
}

var demoSales = []demoSale{
	{amount: 1500, sellerID: "v1", teamID: "eq1", description: "Venda de produto A"},
	{amount: 2300, sellerID: "v2", teamID: "eq1", description: "Venda de produto B"},
	{amount: 1800, sellerID: "v3", teamID: "eq2", description: "Venda de produto C"},
	{amount: 3200, sellerID: "v4", teamID: "eq2", description: "Venda de produto D"},
	{amount: 2100, sellerID: "v5", teamID: "eq3", description: "Venda de produto E"},
	{amount: 2800, sellerID: "v1", teamID: "eq1", description: "Venda de produto F"},
	{amount: 1900, sellerID: "v2", teamID: "eq1", description: "Venda de produto G"},
	{amount: 2500, sellerID: "v3", teamID: "eq2", description: "Venda de produto H"},
}

// demoWindowDays bounds how far back demo sales are dated.
const demoWindowDays = 30

// SeedDemoData inserts the demo dataset. Each sale keeps the current time of
// day and is moved back a random whole number of days in [0, 30).
func (s *service) SeedDemoData(ctx context.Context) (*model.MessageResponse, error) {
	now := s.clock.Now()

	sales := make([]model.Sale, 0, len(demoSales))
	for _, d := range demoSales {
		desc := d.description
		sales = append(sales, model.Sale{
			ID:          uuid.NewString(),
			Amount:      decimal.NewFromInt(d.amount),
			SellerID:    d.sellerID,
			TeamID:      d.teamID,
			OccurredAt:  now.AddDate(0, 0, -s.randIntn(demoWindowDays)).UTC(),
			Description: &desc,
			CreatedAt:   now.UTC(),
		})
	}

	if err := s.repo.CreateBatch(ctx, sales); err != nil {
		return nil, err
	}

	s.logger.Infow("demo data seeded", "count", len(sales))
	return &model.MessageResponse{Message: model.MessageDemoSeeded}, nil
}
