// Package repository provides data access layer for sale module.
package repository

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/apperr"
	"github.com/festy23/sales_dashboard/internal/sale/model"
)

// Repository defines the interface for sale data access operations.
type Repository interface {
	// Create inserts one sale.
	Create(ctx context.Context, sale *model.Sale) error

	// CreateBatch inserts sales in a single transaction.
	CreateBatch(ctx context.Context, sales []model.Sale) error

	// ListBetween returns sales with from <= occurred_at < to, newest first,
	// with seller and team names.
	ListBetween(ctx context.Context, from, to time.Time) ([]model.Sale, error)

	// ListAll returns every sale, newest first, with seller and team names.
	ListAll(ctx context.Context) ([]model.Sale, error)

	// Count returns the number of sales.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new sale repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts one sale. Seller and team references are not checked.
func (r *repository) Create(ctx context.Context, sale *model.Sale) error {
	r.logger.Debugw("Create called", "sale_id", sale.ID, "seller_id", sale.SellerID, "team_id", sale.TeamID)

	if err := r.db.WithContext(ctx).Create(sale).Error; err != nil {
		r.logger.Errorw("Create database error", "sale_id", sale.ID, "error", err)
		return apperr.Store("insert sale", err)
	}

	r.logger.Debugw("Create completed", "sale_id", sale.ID)
	return nil
}

// CreateBatch inserts sales in a single transaction.
func (r *repository) CreateBatch(ctx context.Context, sales []model.Sale) error {
	r.logger.Debugw("CreateBatch called", "sale_count", len(sales))
	if len(sales) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&sales).Error
	})
	if err != nil {
		r.logger.Errorw("CreateBatch database error", "sale_count", len(sales), "error", err)
		return apperr.Store("insert sales", err)
	}

	r.logger.Debugw("CreateBatch completed", "sale_count", len(sales))
	return nil
}

// ListBetween returns sales with from <= occurred_at < to.
func (r *repository) ListBetween(ctx context.Context, from, to time.Time) ([]model.Sale, error) {
	r.logger.Debugw("ListBetween called", "from", from, "to", to)

	query := r.withNames(ctx).
		Where("sales.occurred_at >= ? AND sales.occurred_at < ?", from.UTC(), to.UTC())
	return r.find(query, "ListBetween")
}

// ListAll returns every sale.
func (r *repository) ListAll(ctx context.Context) ([]model.Sale, error) {
	r.logger.Debugw("ListAll called")
	return r.find(r.withNames(ctx), "ListAll")
}

// Count returns the number of sales.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Sale{}).Count(&count).Error; err != nil {
		r.logger.Errorw("Count database error", "error", err)
		return 0, apperr.Store("count sales", err)
	}
	return count, nil
}

// withNames selects sales with seller and team names. The joins are LEFT so
// sales with dangling references are still listed.
func (r *repository) withNames(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Sale{}).
		Select("sales.*, sellers.name AS seller_name, teams.name AS team_name").
		Joins("LEFT JOIN sellers ON sellers.id = sales.seller_id").
		Joins("LEFT JOIN teams ON teams.id = sales.team_id").
		Order("sales.occurred_at DESC, sales.created_at ASC, sales.id ASC")
}

func (r *repository) find(query *gorm.DB, op string) ([]model.Sale, error) {
	var sales []model.Sale
	if err := query.Find(&sales).Error; err != nil {
		r.logger.Errorw(op+" database error", "error", err)
		return nil, apperr.Store("list sales", err)
	}

	if sales == nil {
		sales = []model.Sale{}
	}

	r.logger.Debugw(op+" completed", "sale_count", len(sales))
	return sales, nil
}
