package home

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockHomeRepo is a mock implementation of Repository
type MockHomeRepo struct {
	mock.Mock
}

func (m *MockHomeRepo) CountTable(ctx context.Context, table string) (int, error) {
	args := m.Called(ctx, table)
	return args.Int(0), args.Error(1)
}

func TestSummary(t *testing.T) {
	mockRepo := new(MockHomeRepo)
	service := NewServiceImpl(mockRepo, zap.NewNop())

	mockRepo.On("CountTable", mock.Anything, "tourist_spots").Return(12, nil).Once()
	mockRepo.On("CountTable", mock.Anything, "restaurants").Return(7, nil).Once()
	mockRepo.On("CountTable", mock.Anything, "events").Return(3, nil).Once()
	mockRepo.On("CountTable", mock.Anything, "accommodations").Return(5, nil).Once()

	summary, err := service.Summary(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 12, summary.Spots)
	assert.Equal(t, 7, summary.Restaurants)
	assert.Equal(t, 3, summary.Events)
	assert.Equal(t, 5, summary.Accommodations)
	mockRepo.AssertExpectations(t)
}

func TestSummary_FirstErrorWins(t *testing.T) {
	mockRepo := new(MockHomeRepo)
	service := NewServiceImpl(mockRepo, zap.NewNop())

	dbErr := errors.New("connection reset")
	mockRepo.On("CountTable", mock.Anything, mock.AnythingOfType("string")).Return(0, dbErr)

	_, err := service.Summary(context.Background())

	assert.ErrorIs(t, err, dbErr)
}
