// Package repository provides data access layer for team module.
package repository

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/apperr"
	"github.com/festy23/sales_dashboard/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// List returns all teams ordered by name.
	List(ctx context.Context) ([]model.Team, error)

	// ListInStoreOrder returns all teams in insertion order (created_at, id).
	ListInStoreOrder(ctx context.Context) ([]model.Team, error)

	// Count returns the number of teams.
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// List returns all teams ordered by name.
func (r *repository) List(ctx context.Context) ([]model.Team, error) {
	return r.list(ctx, "List", "name ASC, id ASC")
}

// ListInStoreOrder returns all teams in insertion order.
func (r *repository) ListInStoreOrder(ctx context.Context) ([]model.Team, error) {
	return r.list(ctx, "ListInStoreOrder", "created_at ASC, id ASC")
}

func (r *repository) list(ctx context.Context, op, order string) ([]model.Team, error) {
	r.logger.Debugw(op + " called")

	var teams []model.Team
	err := r.db.WithContext(ctx).
		Order(order).
		Find(&teams).Error
	if err != nil {
		r.logger.Errorw(op+" database error", "error", err)
		return nil, apperr.Store("list teams", err)
	}

	if teams == nil {
		teams = []model.Team{}
	}

	r.logger.Debugw(op+" completed", "team_count", len(teams))
	return teams, nil
}

// Count returns the number of teams.
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Team{}).Count(&count).Error; err != nil {
		r.logger.Errorw("Count database error", "error", err)
		return 0, apperr.Store("count teams", err)
	}
	return count, nil
}
