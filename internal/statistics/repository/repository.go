// Package repository provides data access layer for statistics module.
//
// It reads teams, sellers and sales through the feature repositories so the
// reports see exactly what the listing endpoints see.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/period"
	saleModel "github.com/festy23/sales_dashboard/internal/sale/model"
	saleRepository "github.com/festy23/sales_dashboard/internal/sale/repository"
	sellerModel "github.com/festy23/sales_dashboard/internal/seller/model"
	sellerRepository "github.com/festy23/sales_dashboard/internal/seller/repository"
	teamModel "github.com/festy23/sales_dashboard/internal/team/model"
	teamRepository "github.com/festy23/sales_dashboard/internal/team/repository"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// Teams returns every team in store order.
	Teams(ctx context.Context) ([]teamModel.Team, error)

	// Sellers returns every seller, with team name, in store order.
	Sellers(ctx context.Context) ([]sellerModel.Seller, error)

	// Sales returns the sales inside rng's instant window, or all sales when
	// rng is nil.
	Sales(ctx context.Context, rng *period.Range) ([]saleModel.Sale, error)
}

type repository struct {
	teams   teamRepository.Repository
	sellers sellerRepository.Repository
	sales   saleRepository.Repository
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		teams:   teamRepository.New(db, logger),
		sellers: sellerRepository.New(db, logger),
		sales:   saleRepository.New(db, logger),
	}
}

// Teams returns every team in store order.
func (r *repository) Teams(ctx context.Context) ([]teamModel.Team, error) {
	return r.teams.ListInStoreOrder(ctx)
}

// Sellers returns every seller in store order.
func (r *repository) Sellers(ctx context.Context) ([]sellerModel.Seller, error) {
	return r.sellers.ListInStoreOrder(ctx)
}

// Sales returns the sales inside rng, or all sales when rng is nil.
func (r *repository) Sales(ctx context.Context, rng *period.Range) ([]saleModel.Sale, error) {
	if rng == nil {
		return r.sales.ListAll(ctx)
	}
	from, to := rng.Bounds()
	return r.sales.ListBetween(ctx, from, to)
}
