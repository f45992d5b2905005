// Package repository provides data access layer for seller module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/apperr"
	"github.com/festy23/sales_dashboard/internal/seller/model"
)

// Repository defines the interface for seller data access operations.
type Repository interface {
	// List returns all sellers with their team name, ordered by name.
	List(ctx context.Context) ([]model.Seller, error)

	// ListInStoreOrder returns all sellers with their team name in insertion order.
	ListInStoreOrder(ctx context.Context) ([]model.Seller, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new seller repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all sellers ordered by name.
func (r *repository) List(ctx context.Context) ([]model.Seller, error) {
	return r.list(ctx, "List", "sellers.name ASC, sellers.id ASC")
}

// ListInStoreOrder returns all sellers ordered by created_at, id.
func (r *repository) ListInStoreOrder(ctx context.Context) ([]model.Seller, error) {
	return r.list(ctx, "ListInStoreOrder", "sellers.created_at ASC, sellers.id ASC")
}

func (r *repository) list(ctx context.Context, op, order string) ([]model.Seller, error) {
	r.logger.Debugw(op + " called")

	var sellers []model.Seller
	err := r.db.WithContext(ctx).
		Model(&model.Seller{}).
		Select("sellers.id, sellers.name, sellers.team_id, sellers.created_at, teams.name AS team_name").
		Joins("LEFT JOIN teams ON teams.id = sellers.team_id").
		Order(order).
		Find(&sellers).Error
	if err != nil {
		r.logger.Errorw(op+" database error", "error", err)
		return nil, apperr.Store("list sellers", err)
	}

	if sellers == nil {
		sellers = []model.Seller{}
	}

	r.logger.Debugw(op+" completed", "seller_count", len(sellers))
	return sellers, nil
}
