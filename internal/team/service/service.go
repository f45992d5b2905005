// Package service provides business logic layer for team module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/festy23/sales_dashboard/internal/team/model"
	"github.com/festy23/sales_dashboard/internal/team/repository"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// ListTeams returns all teams sorted by name.
	ListTeams(ctx context.Context) ([]model.TeamResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// ListTeams returns all teams sorted by name.
func (s *service) ListTeams(ctx context.Context) ([]model.TeamResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Infow("teams listed", "count", len(teams))
	return model.NewTeamResponses(teams), nil
}
