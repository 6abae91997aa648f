package itineraries

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
	"github.com/wandererhq/wanderer/internal/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

// SpotSource is the slice of the spot repository the builder needs.
type SpotSource interface {
	GetByCategoryOverlap(ctx context.Context, categories []string) ([]models.TouristSpot, error)
	GetByIDs(ctx context.Context, spotIDs []uuid.UUID) ([]models.TouristSpot, error)
	GetByID(ctx context.Context, spotID uuid.UUID) (*models.TouristSpot, error)
}

// Service turns interest selections into saved itineraries.
type Service interface {
	GenerateRecommendations(ctx context.Context, categories []string) ([]models.TouristSpot, error)
	SaveItinerary(ctx context.Context, userID uuid.UUID, req models.SaveItineraryRequest) (*models.Itinerary, error)
	QuickTrip(ctx context.Context, userID, spotID uuid.UUID) (*models.Itinerary, error)
	ListItineraries(ctx context.Context, userID uuid.UUID) ([]models.Itinerary, error)
	DeleteItinerary(ctx context.Context, userID, itineraryID uuid.UUID) error
}

type ServiceImpl struct {
	repo   Repository
	spots  SpotSource
	logger *zap.Logger
}

func NewServiceImpl(repo Repository, spots SpotSource, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		spots:  spots,
		logger: logger,
	}
}

// GenerateRecommendations returns every spot sharing at least one category
// with the selection. The selection must be non-empty.
func (s *ServiceImpl) GenerateRecommendations(ctx context.Context, categories []string) ([]models.TouristSpot, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: %w", models.ErrNoCategoriesSelected, models.ErrValidation)
	}

	candidates, err := s.spots.GetByCategoryOverlap(ctx, categories)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generated itinerary recommendations",
		zap.Strings("categories", categories),
		zap.Int("candidates", len(candidates)))
	return candidates, nil
}

// ItineraryName derives the saved plan's name from the chosen categories,
// e.g. "Nature & Food Adventure".
func ItineraryName(categories []string) string {
	return strings.Join(categories, " & ") + " Adventure"
}

// SaveItinerary persists the pruned candidate set as one immutable record.
// An empty selection is rejected before any repository call is made.
func (s *ServiceImpl) SaveItinerary(ctx context.Context, userID uuid.UUID, req models.SaveItineraryRequest) (*models.Itinerary, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("sign in to save an itinerary: %w", models.ErrUnauthenticated)
	}
	if len(req.SpotIDs) == 0 {
		return nil, fmt.Errorf("%w: %w", models.ErrNoSpotsSelected, models.ErrValidation)
	}
	if len(req.Categories) == 0 {
		return nil, fmt.Errorf("%w: %w", models.ErrNoCategoriesSelected, models.ErrValidation)
	}

	selected, err := s.spots.GetByIDs(ctx, req.SpotIDs)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("selected spots no longer exist: %w", models.ErrNotFound)
	}

	snapshots := make([]models.SpotSnapshot, 0, len(selected))
	for i := range selected {
		snapshots = append(snapshots, selected[i].Snapshot())
	}

	itinerary := &models.Itinerary{
		UserID:             userID,
		Name:               ItineraryName(req.Categories),
		SelectedCategories: req.Categories,
		Spots:              snapshots,
	}

	saved, err := s.repo.Insert(ctx, itinerary)
	if err != nil {
		return nil, err
	}
	if m := metrics.Get(); m != nil {
		m.ItinerariesCreatedTotal.Add(ctx, 1)
	}
	return saved, nil
}

// QuickTrip creates a one-spot itinerary straight from the browse grid.
func (s *ServiceImpl) QuickTrip(ctx context.Context, userID, spotID uuid.UUID) (*models.Itinerary, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("sign in to add to itinerary: %w", models.ErrUnauthenticated)
	}

	spot, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		return nil, err
	}

	itinerary := &models.Itinerary{
		UserID:             userID,
		Name:               "Quick Trip - " + spot.Name,
		SelectedCategories: append([]string(nil), spot.Category...),
		Spots:              []models.SpotSnapshot{spot.Snapshot()},
	}

	saved, err := s.repo.Insert(ctx, itinerary)
	if err != nil {
		return nil, err
	}
	if m := metrics.Get(); m != nil {
		m.ItinerariesCreatedTotal.Add(ctx, 1)
	}
	return saved, nil
}

// ListItineraries returns the caller's saved plans, newest first.
func (s *ServiceImpl) ListItineraries(ctx context.Context, userID uuid.UUID) ([]models.Itinerary, error) {
	return s.repo.GetByUser(ctx, userID)
}

// DeleteItinerary removes one of the caller's own itineraries.
func (s *ServiceImpl) DeleteItinerary(ctx context.Context, userID, itineraryID uuid.UUID) error {
	return s.repo.DeleteOwned(ctx, userID, itineraryID)
}
