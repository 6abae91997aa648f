package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service exposes the public events calendar and the admin CRUD.
type Service interface {
	ListEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, error)
	CreateEvent(ctx context.Context, params EventParams) (*models.Event, error)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, params EventParams) (*models.Event, error)
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
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

func validateEventParams(params *EventParams) error {
	params.Name = strings.TrimSpace(params.Name)
	params.Location = strings.TrimSpace(params.Location)
	if params.Name == "" {
		return fmt.Errorf("event name is required: %w", models.ErrValidation)
	}
	if params.Location == "" {
		return fmt.Errorf("event location is required: %w", models.ErrValidation)
	}
	return nil
}

func (s *ServiceImpl) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) GetEvent(ctx context.Context, eventID uuid.UUID) (*models.Event, error) {
	return s.repo.GetByID(ctx, eventID)
}

func (s *ServiceImpl) CreateEvent(ctx context.Context, params EventParams) (*models.Event, error) {
	if err := validateEventParams(&params); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

func (s *ServiceImpl) UpdateEvent(ctx context.Context, eventID uuid.UUID, params EventParams) (*models.Event, error) {
	if err := validateEventParams(&params); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, eventID, params)
}

func (s *ServiceImpl) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	return s.repo.Delete(ctx, eventID)
}
