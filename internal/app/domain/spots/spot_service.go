package spots

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service is the business logic contract for browsing and managing spots.
type Service interface {
	ListSpots(ctx context.Context, filter models.SpotFilter) ([]models.TouristSpot, error)
	GetSpot(ctx context.Context, spotID uuid.UUID) (*models.TouristSpot, error)
	MapMarkers(ctx context.Context) ([]models.MapMarker, error)
	CreateSpot(ctx context.Context, params SpotParams) (*models.TouristSpot, error)
	UpdateSpot(ctx context.Context, spotID uuid.UUID, params SpotParams) (*models.TouristSpot, error)
	DeleteSpot(ctx context.Context, spotID uuid.UUID) error
}

const markersCacheKey = "map_markers"

type ServiceImpl struct {
	repo   Repository
	cache  *cache.Cache
	logger *zap.Logger
}

func NewServiceImpl(repo Repository, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		cache:  cache.New(time.Minute, 5*time.Minute),
		logger: logger,
	}
}

// ListSpots loads the full set and narrows it in memory. Search is a
// case-insensitive substring match on name and municipality; when several
// category filters are active a spot must carry every one of them.
func (s *ServiceImpl) ListSpots(ctx context.Context, filter models.SpotFilter) ([]models.TouristSpot, error) {
	spots, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSpots(spots, filter), nil
}

// FilterSpots applies the explore filter semantics to an in-memory set.
func FilterSpots(spots []models.TouristSpot, filter models.SpotFilter) []models.TouristSpot {
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	if query == "" && len(filter.Categories) == 0 {
		return spots
	}

	filtered := make([]models.TouristSpot, 0, len(spots))
	for _, spot := range spots {
		if query != "" && !matchesQuery(spot, query) {
			continue
		}
		if !hasAllCategories(spot.Category, filter.Categories) {
			continue
		}
		filtered = append(filtered, spot)
	}
	return filtered
}

func matchesQuery(spot models.TouristSpot, loweredQuery string) bool {
	if strings.Contains(strings.ToLower(spot.Name), loweredQuery) {
		return true
	}
	if spot.Municipality != nil && strings.Contains(strings.ToLower(*spot.Municipality), loweredQuery) {
		return true
	}
	return false
}

func hasAllCategories(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// GetSpot fetches a single spot by id.
func (s *ServiceImpl) GetSpot(ctx context.Context, spotID uuid.UUID) (*models.TouristSpot, error) {
	return s.repo.GetByID(ctx, spotID)
}

// MapMarkers serves the pinnable spot set with a short cache; the map page
// refetches on every mount and the underlying set changes rarely.
func (s *ServiceImpl) MapMarkers(ctx context.Context) ([]models.MapMarker, error) {
	if cached, found := s.cache.Get(markersCacheKey); found {
		if markers, ok := cached.([]models.MapMarker); ok {
			return markers, nil
		}
	}

	markers, err := s.repo.GetMapMarkers(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(markersCacheKey, markers, cache.DefaultExpiration)
	return markers, nil
}

// CreateSpot validates and stores a new admin-entered spot.
func (s *ServiceImpl) CreateSpot(ctx context.Context, params SpotParams) (*models.TouristSpot, error) {
	if err := validateSpotParams(params); err != nil {
		return nil, err
	}
	spot, err := s.repo.Create(ctx, params)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(markersCacheKey)
	return spot, nil
}

// UpdateSpot rewrites an existing spot.
func (s *ServiceImpl) UpdateSpot(ctx context.Context, spotID uuid.UUID, params SpotParams) (*models.TouristSpot, error) {
	if err := validateSpotParams(params); err != nil {
		return nil, err
	}
	spot, err := s.repo.Update(ctx, spotID, params)
	if err != nil {
		return nil, err
	}
	s.cache.Delete(markersCacheKey)
	return spot, nil
}

// DeleteSpot removes a spot.
func (s *ServiceImpl) DeleteSpot(ctx context.Context, spotID uuid.UUID) error {
	if err := s.repo.Delete(ctx, spotID); err != nil {
		return err
	}
	s.cache.Delete(markersCacheKey)
	return nil
}

func validateSpotParams(params SpotParams) error {
	if strings.TrimSpace(params.Name) == "" {
		return fmt.Errorf("spot name is required: %w", models.ErrValidation)
	}
	if strings.TrimSpace(params.Location) == "" {
		return fmt.Errorf("spot location is required: %w", models.ErrValidation)
	}
	return nil
}
