package restaurants

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes the public dining listing and the admin CRUD.
type Service interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID uuid.UUID) (*models.Restaurant, error)
	CreateRestaurant(ctx context.Context, params RestaurantParams) (*models.Restaurant, error)
	UpdateRestaurant(ctx context.Context, restaurantID uuid.UUID, params RestaurantParams) (*models.Restaurant, error)
	DeleteRestaurant(ctx context.Context, restaurantID uuid.UUID) error
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

func validateRestaurantParams(params *RestaurantParams) error {
	params.Name = strings.TrimSpace(params.Name)
	params.Location = strings.TrimSpace(params.Location)
	if params.Name == "" {
		return fmt.Errorf("restaurant name is required: %w", models.ErrValidation)
	}
	if params.Location == "" {
		return fmt.Errorf("restaurant location is required: %w", models.ErrValidation)
	}
	return nil
}

func (s *ServiceImpl) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) GetRestaurant(ctx context.Context, restaurantID uuid.UUID) (*models.Restaurant, error) {
	return s.repo.GetByID(ctx, restaurantID)
}

func (s *ServiceImpl) CreateRestaurant(ctx context.Context, params RestaurantParams) (*models.Restaurant, error) {
	if err := validateRestaurantParams(&params); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *ServiceImpl) UpdateRestaurant(ctx context.Context, restaurantID uuid.UUID, params RestaurantParams) (*models.Restaurant, error) {
	if err := validateRestaurantParams(&params); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, restaurantID, params)
}

func (s *ServiceImpl) DeleteRestaurant(ctx context.Context, restaurantID uuid.UUID) error {
	return s.repo.Delete(ctx, restaurantID)
}
