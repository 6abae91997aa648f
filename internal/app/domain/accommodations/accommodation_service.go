package accommodations

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes the public lodging listing and the admin CRUD.
type Service interface {
	ListAccommodations(ctx context.Context) ([]models.Accommodation, error)
	GetAccommodation(ctx context.Context, accommodationID uuid.UUID) (*models.Accommodation, error)
	CreateAccommodation(ctx context.Context, params AccommodationParams) (*models.Accommodation, error)
	UpdateAccommodation(ctx context.Context, accommodationID uuid.UUID, params AccommodationParams) (*models.Accommodation, error)
	DeleteAccommodation(ctx context.Context, accommodationID uuid.UUID) error
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

func validateAccommodationParams(params *AccommodationParams) error {
	params.Name = strings.TrimSpace(params.Name)
	params.Location = strings.TrimSpace(params.Location)
	if params.Name == "" {
		return fmt.Errorf("accommodation name is required: %w", models.ErrValidation)
	}
	if params.Location == "" {
		return fmt.Errorf("accommodation location is required: %w", models.ErrValidation)
	}
	if params.Rating < 0 || params.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5: %w", models.ErrValidation)
	}
	return nil
}

func (s *ServiceImpl) ListAccommodations(ctx context.Context) ([]models.Accommodation, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) GetAccommodation(ctx context.Context, accommodationID uuid.UUID) (*models.Accommodation, error) {
	return s.repo.GetByID(ctx, accommodationID)
}

func (s *ServiceImpl) CreateAccommodation(ctx context.Context, params AccommodationParams) (*models.Accommodation, error) {
	if err := validateAccommodationParams(&params); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *ServiceImpl) UpdateAccommodation(ctx context.Context, accommodationID uuid.UUID, params AccommodationParams) (*models.Accommodation, error) {
	if err := validateAccommodationParams(&params); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, accommodationID, params)
}

func (s *ServiceImpl) DeleteAccommodation(ctx context.Context, accommodationID uuid.UUID) error {
	return s.repo.Delete(ctx, accommodationID)
}
