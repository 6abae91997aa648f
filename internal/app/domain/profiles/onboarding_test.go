package profiles

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

// MockProfileRepo is a mock implementation of Repository
type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, req models.UpdateProfileRequest) (*models.Profile, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileRepo) SaveOnboardingAnswers(ctx context.Context, userID uuid.UUID, answers *models.OnboardingAnswers) error {
	args := m.Called(ctx, userID, answers)
	return args.Error(0)
}

func validAnswers() *models.OnboardingAnswers {
	return &models.OnboardingAnswers{
		Exploring:   "Hidden gems",
		Weekend:     "Hiking",
		Preference:  "History",
		Food:        "Street food",
		Restaurant:  "Cozy",
		UnusualFood: "Sometimes",
		Transport:   "Walk",
		Location:    "City center",
		Planning:    "Flexible itinerary",
	}
}

func TestOnboardingSteps_Definition(t *testing.T) {
	steps := OnboardingSteps()

	assert.Len(t, steps, 3)
	assert.Equal(t, "Exploring & Activities", steps[0].Title)
	assert.Equal(t, "Food & Drink", steps[1].Title)
	assert.Equal(t, "Logistics & Vibe", steps[2].Title)
	for _, step := range steps {
		assert.Len(t, step.Questions, 3)
		for _, q := range step.Questions {
			assert.NotEmpty(t, q.Options)
		}
	}
}

func TestValidateOnboardingAnswers(t *testing.T) {
	t.Run("complete valid set passes", func(t *testing.T) {
		assert.NoError(t, ValidateOnboardingAnswers(validAnswers()))
	})

	t.Run("unanswered question rejected", func(t *testing.T) {
		answers := validAnswers()
		answers.Transport = ""
		err := ValidateOnboardingAnswers(answers)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("answer outside option list rejected", func(t *testing.T) {
		answers := validAnswers()
		answers.Food = "Molecular gastronomy"
		err := ValidateOnboardingAnswers(answers)
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestCompleteOnboarding(t *testing.T) {
	userID := uuid.New()

	t.Run("valid answers saved once", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		service := NewServiceImpl(mockRepo, zap.NewNop())
		answers := validAnswers()
		mockRepo.On("SaveOnboardingAnswers", mock.Anything, userID, answers).Return(nil).Once()

		assert.NoError(t, service.CompleteOnboarding(context.Background(), userID, answers))
		mockRepo.AssertExpectations(t)
	})

	t.Run("second submission surfaces conflict", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		service := NewServiceImpl(mockRepo, zap.NewNop())
		answers := validAnswers()
		mockRepo.On("SaveOnboardingAnswers", mock.Anything, userID, answers).
			Return(models.ErrOnboardingDone).Once()

		err := service.CompleteOnboarding(context.Background(), userID, answers)
		assert.ErrorIs(t, err, models.ErrOnboardingDone)
	})

	t.Run("invalid answers never reach the repository", func(t *testing.T) {
		mockRepo := new(MockProfileRepo)
		service := NewServiceImpl(mockRepo, zap.NewNop())
		answers := validAnswers()
		answers.Planning = ""

		err := service.CompleteOnboarding(context.Background(), userID, answers)
		assert.ErrorIs(t, err, models.ErrValidation)
		mockRepo.AssertNotCalled(t, "SaveOnboardingAnswers", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdateProfile_NameRequired(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	service := NewServiceImpl(mockRepo, zap.NewNop())

	_, err := service.UpdateProfile(context.Background(), uuid.New(), models.UpdateProfileRequest{FullName: "   "})

	assert.ErrorIs(t, err, models.ErrValidation)
	mockRepo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_TrimsName(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockProfileRepo)
	service := NewServiceImpl(mockRepo, zap.NewNop())

	trimmed := models.UpdateProfileRequest{FullName: "Juan Dela Cruz"}
	name := "Juan Dela Cruz"
	mockRepo.On("UpdateProfile", mock.Anything, userID, trimmed).
		Return(&models.Profile{ID: userID, FullName: &name}, nil).Once()

	profile, err := service.UpdateProfile(context.Background(), userID, models.UpdateProfileRequest{FullName: "  Juan Dela Cruz  "})

	assert.NoError(t, err)
	assert.Equal(t, "Juan Dela Cruz", *profile.FullName)
	mockRepo.AssertExpectations(t)
}
