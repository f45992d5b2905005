// Package service provides the sales reports: projections and breakdowns by
// team and seller.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/festy23/sales_dashboard/internal/aggregate"
	"github.com/festy23/sales_dashboard/internal/clock"
	"github.com/festy23/sales_dashboard/internal/period"
	"github.com/festy23/sales_dashboard/internal/projection"
	"github.com/festy23/sales_dashboard/internal/statistics/model"
	"github.com/festy23/sales_dashboard/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// FortnightProjection projects the trailing fortnight's sales.
	FortnightProjection(ctx context.Context) (*model.FortnightProjectionResponse, error)

	// MonthProjection projects month-to-date sales onto the whole month.
	MonthProjection(ctx context.Context) (*model.MonthProjectionResponse, error)

	// SalesByTeam groups sales of the period by team. A nil kind means all time.
	SalesByTeam(ctx context.Context, kind *period.Kind) ([]model.TeamSalesResponse, error)

	// SalesBySeller groups sales of the period by seller. A nil kind means all time.
	SalesBySeller(ctx context.Context, kind *period.Kind) ([]model.SellerSalesResponse, error)
}

type service struct {
	repo   repository.Repository
	clock  clock.Clock
	loc    *time.Location
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance. Period boundaries follow loc.
func New(repo repository.Repository, clk clock.Clock, loc *time.Location, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		clock:  clk,
		loc:    loc,
		logger: logger,
	}
}

func (s *service) now() time.Time {
	return s.clock.Now().In(s.loc)
}

// FortnightProjection projects the trailing fortnight's sales.
func (s *service) FortnightProjection(ctx context.Context) (*model.FortnightProjectionResponse, error) {
	summary, err := s.summarize(ctx, period.Fortnight, s.now())
	if err != nil {
		return nil, err
	}

	result := projection.Fortnight(summary.Total)

	s.logger.Infow("fortnight projection computed", "total", summary.Total.String(), "count", summary.Count)
	return model.NewFortnightProjectionResponse(result, summary.Total.InexactFloat64()), nil
}

// MonthProjection projects month-to-date sales onto the whole month.
func (s *service) MonthProjection(ctx context.Context) (*model.MonthProjectionResponse, error) {
	now := s.now()
	summary, err := s.summarize(ctx, period.Month, now)
	if err != nil {
		return nil, err
	}

	result := projection.Month(summary.Total, now)

	s.logger.Infow("month projection computed",
		"total", summary.Total.String(),
		"days_passed", result.DaysPassed,
		"days_in_month", result.DaysInMonth,
	)
	return model.NewMonthProjectionResponse(result, summary.Total.InexactFloat64()), nil
}

func (s *service) summarize(ctx context.Context, kind period.Kind, now time.Time) (aggregate.Summary, error) {
	rng, err := period.Resolve(kind, now)
	if err != nil {
		return aggregate.Summary{}, err
	}

	sales, err := s.repo.Sales(ctx, &rng)
	if err != nil {
		return aggregate.Summary{}, err
	}

	return aggregate.Summarize(sales, rng), nil
}

// SalesByTeam groups sales of the period by the team each sale was booked against.
func (s *service) SalesByTeam(ctx context.Context, kind *period.Kind) ([]model.TeamSalesResponse, error) {
	rng, err := s.resolve(kind)
	if err != nil {
		return nil, err
	}

	teams, err := s.repo.Teams(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.Sales(ctx, rng)
	if err != nil {
		return nil, err
	}

	groups := aggregate.ByTeam(teams, sales, rng)

	s.logger.Infow("sales by team computed", "period", describe(kind), "teams", len(groups), "sales", len(sales))
	return model.NewTeamSalesResponses(groups), nil
}

// SalesBySeller groups sales of the period by seller.
func (s *service) SalesBySeller(ctx context.Context, kind *period.Kind) ([]model.SellerSalesResponse, error) {
	rng, err := s.resolve(kind)
	if err != nil {
		return nil, err
	}

	sellers, err := s.repo.Sellers(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.repo.Sales(ctx, rng)
	if err != nil {
		return nil, err
	}

	groups := aggregate.BySeller(sellers, sales, rng)

	s.logger.Infow("sales by seller computed", "period", describe(kind), "sellers", len(groups), "sales", len(sales))
	return model.NewSellerSalesResponses(groups), nil
}

func (s *service) resolve(kind *period.Kind) (*period.Range, error) {
	if kind == nil {
		return nil, nil
	}
	rng, err := period.Resolve(*kind, s.now())
	if err != nil {
		return nil, err
	}
	return &rng, nil
}

func describe(kind *period.Kind) string {
	if kind == nil {
		return "all"
	}
	return kind.String()
}
