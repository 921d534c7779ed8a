package genres

import (
	"context"
	"fmt"
)

type Service interface {
	Seed(ctx context.Context) error
	List(ctx context.Context) ([]string, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Seed(ctx context.Context) error {
	if err := s.repo.Seed(ctx); err != nil {
		return fmt.Errorf("failed to seed genres: %w", err)
	}
	return nil
}

func (s *service) List(ctx context.Context) ([]string, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list genres: %w", err)
	}

	names := make([]string, len(rows))
	for i, g := range rows {
		names[i] = g.Name
	}
	return names, nil
}
