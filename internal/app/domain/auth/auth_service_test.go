package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

// MockAuthRepo is a mock implementation of Repository
type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) Register(ctx context.Context, username, email, hashedPassword string) (uuid.UUID, error) {
	args := m.Called(ctx, username, email, hashedPassword)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockAuthRepo) GetUserByEmail(ctx context.Context, email string) (*models.UserAuth, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAuth), args.Error(1)
}

func (m *MockAuthRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.UserAuth, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserAuth), args.Error(1)
}

func (m *MockAuthRepo) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		SecretKey:       "test-secret",
		TokenExpiration: time.Hour,
	}
}

func TestRegister_ShortPasswordRejectedBeforeRepo(t *testing.T) {
	mockRepo := new(MockAuthRepo)
	service := NewServiceImpl(mockRepo, testJWTConfig(), zap.NewNop())

	_, _, err := service.Register(context.Background(), "juan", "juan@example.com", "short")

	assert.ErrorIs(t, err, models.ErrValidation)
	mockRepo.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_NormalizesEmailAndIssuesToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mockRepo := new(MockAuthRepo)
	service := NewServiceImpl(mockRepo, testJWTConfig(), zap.NewNop())

	mockRepo.On("Register", mock.Anything, "juan", "juan@example.com", mock.AnythingOfType("string")).
		Return(userID, nil).Once()
	mockRepo.On("GetUserByID", mock.Anything, userID).
		Return(&models.UserAuth{ID: userID, Username: "juan", Email: "juan@example.com"}, nil).Once()

	user, token, err := service.Register(ctx, " juan ", "  JUAN@Example.COM ", "password123")

	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.NotEmpty(t, token)
	mockRepo.AssertExpectations(t)
}

func TestRegister_DuplicateEmailSurfacesConflict(t *testing.T) {
	mockRepo := new(MockAuthRepo)
	service := NewServiceImpl(mockRepo, testJWTConfig(), zap.NewNop())

	mockRepo.On("Register", mock.Anything, "juan", "juan@example.com", mock.AnythingOfType("string")).
		Return(uuid.Nil, models.ErrConflict).Once()

	_, _, err := service.Register(context.Background(), "juan", "juan@example.com", "password123")

	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestLogin_UnknownEmailAndWrongPasswordCollapse(t *testing.T) {
	ctx := context.Background()
	jwt := NewJWTService()
	hashed, err := jwt.HashPassword("correct-password")
	assert.NoError(t, err)

	mockRepo := new(MockAuthRepo)
	service := NewServiceImpl(mockRepo, testJWTConfig(), zap.NewNop())

	mockRepo.On("GetUserByEmail", mock.Anything, "missing@example.com").
		Return(nil, models.ErrNotFound).Once()
	mockRepo.On("GetUserByEmail", mock.Anything, "juan@example.com").
		Return(&models.UserAuth{ID: uuid.New(), Email: "juan@example.com", PasswordHash: hashed}, nil).Once()

	// Both failure modes map to the same sentinel so the response cannot
	// leak which one happened.
	_, _, err = service.Login(ctx, "missing@example.com", "whatever")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)

	_, _, err = service.Login(ctx, "juan@example.com", "wrong-password")
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
}

func TestLogin_Success(t *testing.T) {
	jwt := NewJWTService()
	hashed, err := jwt.HashPassword("correct-password")
	assert.NoError(t, err)

	userID := uuid.New()
	mockRepo := new(MockAuthRepo)
	service := NewServiceImpl(mockRepo, testJWTConfig(), zap.NewNop())

	mockRepo.On("GetUserByEmail", mock.Anything, "juan@example.com").
		Return(&models.UserAuth{ID: userID, Username: "juan", Email: "juan@example.com", PasswordHash: hashed}, nil).Once()

	user, token, err := service.Login(context.Background(), "Juan@Example.com", "correct-password")

	assert.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.NotEmpty(t, token)

	claims, err := jwt.ValidateToken(testJWTConfig(), token)
	assert.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}
