package reviews

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

// MockReviewRepo is a mock implementation of Repository
type MockReviewRepo struct {
	mock.Mock
}

func (m *MockReviewRepo) GetBySpot(ctx context.Context, spotID uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepo) GetByID(ctx context.Context, reviewID uuid.UUID) (*models.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepo) GetAuthorNames(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]string), args.Error(1)
}

func (m *MockReviewRepo) Insert(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepo) Delete(ctx context.Context, reviewID uuid.UUID) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

// MockSpotChecker is a mock implementation of SpotChecker
type MockSpotChecker struct {
	mock.Mock
}

func (m *MockSpotChecker) GetByID(ctx context.Context, spotID uuid.UUID) (*models.TouristSpot, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TouristSpot), args.Error(1)
}

func newTestService(repo Repository, spots SpotChecker) *ServiceImpl {
	return NewServiceImpl(repo, spots, zap.NewNop())
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name     string
		ratings  []int
		expected float64
	}{
		{name: "empty set yields zero", ratings: nil, expected: 0},
		{name: "single review", ratings: []int{4}, expected: 4},
		{name: "mean rounds to one decimal", ratings: []int{5, 4, 4}, expected: 4.3},
		{name: "two thirds", ratings: []int{1, 2}, expected: 1.5},
		{name: "repeating decimal", ratings: []int{5, 5, 4}, expected: 4.7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reviews := make([]models.Review, 0, len(tc.ratings))
			for _, r := range tc.ratings {
				reviews = append(reviews, models.Review{Rating: r})
			}
			assert.Equal(t, tc.expected, AverageRating(reviews))
		})
	}
}

func TestListForSpot_EnrichesAuthorsWithOneBatchedLookup(t *testing.T) {
	ctx := context.Background()
	spotID := uuid.New()
	alice := uuid.New()
	bob := uuid.New()

	mockRepo := new(MockReviewRepo)
	service := newTestService(mockRepo, new(MockSpotChecker))

	// Alice wrote twice; the author lookup still receives each id once.
	mockRepo.On("GetBySpot", mock.Anything, spotID).Return([]models.Review{
		{ID: uuid.New(), SpotID: spotID, UserID: alice, Rating: 5},
		{ID: uuid.New(), SpotID: spotID, UserID: alice, Rating: 4},
		{ID: uuid.New(), SpotID: spotID, UserID: bob, Rating: 3},
	}, nil).Once()
	mockRepo.On("GetAuthorNames", mock.Anything, []uuid.UUID{alice, bob}).
		Return(map[uuid.UUID]string{alice: "Alice"}, nil).Once()

	page, err := service.ListForSpot(ctx, spotID)

	assert.NoError(t, err)
	assert.Equal(t, 3, page.Count)
	assert.Equal(t, 4.0, page.AverageRating)
	assert.Equal(t, "Alice", page.Reviews[0].UserName)
	assert.Equal(t, "Alice", page.Reviews[1].UserName)
	assert.Equal(t, "Anonymous", page.Reviews[2].UserName)
	mockRepo.AssertExpectations(t)
}

func TestListForSpot_EmptyState(t *testing.T) {
	spotID := uuid.New()
	mockRepo := new(MockReviewRepo)
	service := newTestService(mockRepo, new(MockSpotChecker))

	mockRepo.On("GetBySpot", mock.Anything, spotID).Return([]models.Review{}, nil).Once()
	mockRepo.On("GetAuthorNames", mock.Anything, []uuid.UUID{}).
		Return(map[uuid.UUID]string{}, nil).Once()

	page, err := service.ListForSpot(context.Background(), spotID)

	assert.NoError(t, err)
	assert.Equal(t, 0, page.Count)
	assert.Equal(t, 0.0, page.AverageRating)
	assert.Empty(t, page.Reviews)
}

func TestCreateReview_RatingBounds(t *testing.T) {
	mockRepo := new(MockReviewRepo)
	mockSpots := new(MockSpotChecker)
	service := newTestService(mockRepo, mockSpots)

	for _, rating := range []int{0, 6, -1} {
		_, err := service.CreateReview(context.Background(), uuid.New(), uuid.New(), models.CreateReviewRequest{Rating: rating})
		assert.ErrorIs(t, err, models.ErrValidation)
	}
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	mockSpots.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCreateReview_SpotMustExist(t *testing.T) {
	mockRepo := new(MockReviewRepo)
	mockSpots := new(MockSpotChecker)
	service := newTestService(mockRepo, mockSpots)

	spotID := uuid.New()
	mockSpots.On("GetByID", mock.Anything, spotID).Return(nil, models.ErrNotFound).Once()

	_, err := service.CreateReview(context.Background(), uuid.New(), spotID, models.CreateReviewRequest{Rating: 4})

	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestDeleteReview_AuthorOnly(t *testing.T) {
	author := uuid.New()
	stranger := uuid.New()
	reviewID := uuid.New()

	mockRepo := new(MockReviewRepo)
	service := newTestService(mockRepo, new(MockSpotChecker))

	mockRepo.On("GetByID", mock.Anything, reviewID).
		Return(&models.Review{ID: reviewID, UserID: author, Rating: 5}, nil).Twice()
	mockRepo.On("Delete", mock.Anything, reviewID).Return(nil).Once()

	err := service.DeleteReview(context.Background(), stranger, reviewID)
	assert.ErrorIs(t, err, models.ErrForbidden)

	err = service.DeleteReview(context.Background(), author, reviewID)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
