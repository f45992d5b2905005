// Package service provides business logic layer for seller module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/sales_dashboard/internal/seller/model"
	"github.com/festy23/sales_dashboard/internal/seller/repository"
)

// Service defines the interface for seller business logic operations.
type Service interface {
	// ListSellers returns all sellers with their team, sorted by name.
	ListSellers(ctx context.Context) ([]model.SellerResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new seller service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// ListSellers returns all sellers with their team, sorted by name.
func (s *service) ListSellers(ctx context.Context) ([]model.SellerResponse, error) {
	sellers, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("sellers listed", "count", len(sellers))
	return model.NewSellerResponses(sellers), nil
}
