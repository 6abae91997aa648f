package profiles

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service manages profile edits and the one-time onboarding wizard.
type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error)
	OnboardingSteps() []models.OnboardingStep
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, answers *models.OnboardingAnswers) error
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

func (s *ServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// UpdateProfile trims the display name and rejects a blank one.
func (s *ServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return nil, fmt.Errorf("full name cannot be empty: %w", models.ErrValidation)
	}

	profile, err := s.repo.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Profile updated", zap.String("userID", userID.String()))
	return profile, nil
}

func (s *ServiceImpl) OnboardingSteps() []models.OnboardingStep {
	return OnboardingSteps()
}

// CompleteOnboarding validates the full answer set and records it once.
func (s *ServiceImpl) CompleteOnboarding(ctx context.Context, userID uuid.UUID, answers *models.OnboardingAnswers) error {
	if answers == nil {
		return fmt.Errorf("answers are required: %w", models.ErrValidation)
	}
	if err := ValidateOnboardingAnswers(answers); err != nil {
		return err
	}
	if err := s.repo.SaveOnboardingAnswers(ctx, userID, answers); err != nil {
		return err
	}
	s.logger.Info("Onboarding completed", zap.String("userID", userID.String()))
	return nil
}
