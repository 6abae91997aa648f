package home

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/wandererhq/wanderer/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service assembles the landing page summary.
type Service interface {
	Summary(ctx context.Context) (*models.HomeSummary, error)
}

type ServiceImpl struct {
	repo   Repository
	logger *zap.Logger
}

func NewServiceImpl(repo Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

// Summary counts the four catalog tables concurrently; the first failure
// cancels the remaining queries.
func (s *ServiceImpl) Summary(ctx context.Context) (*models.HomeSummary, error) {
	var summary models.HomeSummary

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.repo.CountTable(ctx, "tourist_spots")
		summary.Spots = count
		return err
	})
	g.Go(func() error {
		count, err := s.repo.CountTable(ctx, "restaurants")
		summary.Restaurants = count
		return err
	})
	g.Go(func() error {
		count, err := s.repo.CountTable(ctx, "events")
		summary.Events = count
		return err
	})
	g.Go(func() error {
		count, err := s.repo.CountTable(ctx, "accommodations")
		summary.Accommodations = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &summary, nil
}
