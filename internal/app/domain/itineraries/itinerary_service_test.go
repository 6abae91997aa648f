package itineraries

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
)

// MockItineraryRepo is a mock implementation of Repository
type MockItineraryRepo struct {
	mock.Mock
}

func (m *MockItineraryRepo) Insert(ctx context.Context, itinerary *models.Itinerary) (*models.Itinerary, error) {
	args := m.Called(ctx, itinerary)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Itinerary), args.Error(1)
}

func (m *MockItineraryRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Itinerary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Itinerary), args.Error(1)
}

func (m *MockItineraryRepo) GetByID(ctx context.Context, itineraryID uuid.UUID) (*models.Itinerary, error) {
	args := m.Called(ctx, itineraryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Itinerary), args.Error(1)
}

func (m *MockItineraryRepo) DeleteOwned(ctx context.Context, userID, itineraryID uuid.UUID) error {
	args := m.Called(ctx, userID, itineraryID)
	return args.Error(0)
}

// MockSpotSource is a mock implementation of SpotSource
type MockSpotSource struct {
	mock.Mock
}

func (m *MockSpotSource) GetByCategoryOverlap(ctx context.Context, categories []string) ([]models.TouristSpot, error) {
	args := m.Called(ctx, categories)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TouristSpot), args.Error(1)
}

func (m *MockSpotSource) GetByIDs(ctx context.Context, spotIDs []uuid.UUID) ([]models.TouristSpot, error) {
	args := m.Called(ctx, spotIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TouristSpot), args.Error(1)
}

func (m *MockSpotSource) GetByID(ctx context.Context, spotID uuid.UUID) (*models.TouristSpot, error) {
	args := m.Called(ctx, spotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TouristSpot), args.Error(1)
}

func newTestService(repo Repository, spots SpotSource) *ServiceImpl {
	return NewServiceImpl(repo, spots, zap.NewNop())
}

func TestGenerateRecommendations_OverlapSemantics(t *testing.T) {
	ctx := context.Background()
	mockSpots := new(MockSpotSource)
	service := newTestService(new(MockItineraryRepo), mockSpots)

	// A carries Nature, B carries Food+Beach, C carries only Adventure.
	// Selecting {Nature, Food} must surface A and B and exclude C, which
	// the repository's overlap query already guarantees.
	spotA := models.TouristSpot{ID: uuid.New(), Name: "A", Category: []string{"Nature"}}
	spotB := models.TouristSpot{ID: uuid.New(), Name: "B", Category: []string{"Food", "Beach"}}
	selection := []string{"Nature", "Food"}
	mockSpots.On("GetByCategoryOverlap", mock.Anything, selection).
		Return([]models.TouristSpot{spotA, spotB}, nil).Once()

	candidates, err := service.GenerateRecommendations(ctx, selection)

	assert.NoError(t, err)
	assert.Len(t, candidates, 2)
	assert.Equal(t, "A", candidates[0].Name)
	assert.Equal(t, "B", candidates[1].Name)
	mockSpots.AssertExpectations(t)
}

func TestGenerateRecommendations_EmptySelectionRejected(t *testing.T) {
	mockSpots := new(MockSpotSource)
	service := newTestService(new(MockItineraryRepo), mockSpots)

	_, err := service.GenerateRecommendations(context.Background(), nil)

	assert.ErrorIs(t, err, models.ErrNoCategoriesSelected)
	mockSpots.AssertNotCalled(t, "GetByCategoryOverlap", mock.Anything, mock.Anything)
}

func TestItineraryName(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		expected   string
	}{
		{name: "single category", categories: []string{"Nature"}, expected: "Nature Adventure"},
		{name: "two categories", categories: []string{"Nature", "Food"}, expected: "Nature & Food Adventure"},
		{name: "three categories", categories: []string{"Beach", "Food", "Historical"}, expected: "Beach & Food & Historical Adventure"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ItineraryName(tc.categories))
		})
	}
}

func TestSaveItinerary_EmptySpotSelectionRejectedBeforeRepo(t *testing.T) {
	mockRepo := new(MockItineraryRepo)
	mockSpots := new(MockSpotSource)
	service := newTestService(mockRepo, mockSpots)

	_, err := service.SaveItinerary(context.Background(), uuid.New(), models.SaveItineraryRequest{
		Categories: []string{"Nature"},
		SpotIDs:    nil,
	})

	assert.ErrorIs(t, err, models.ErrNoSpotsSelected)
	mockSpots.AssertNotCalled(t, "GetByIDs", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSaveItinerary_SnapshotsSelectedSpots(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mockRepo := new(MockItineraryRepo)
	mockSpots := new(MockSpotSource)
	service := newTestService(mockRepo, mockSpots)

	spot := models.TouristSpot{ID: uuid.New(), Name: "Mayon Volcano", Location: "Legazpi", Category: []string{"Nature"}}
	mockSpots.On("GetByIDs", mock.Anything, []uuid.UUID{spot.ID}).
		Return([]models.TouristSpot{spot}, nil).Once()
	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(it *models.Itinerary) bool {
		return it.UserID == userID &&
			it.Name == "Nature Adventure" &&
			len(it.Spots) == 1 &&
			it.Spots[0].Name == "Mayon Volcano"
	})).Return(&models.Itinerary{UserID: userID, Name: "Nature Adventure"}, nil).Once()

	saved, err := service.SaveItinerary(ctx, userID, models.SaveItineraryRequest{
		Categories: []string{"Nature"},
		SpotIDs:    []uuid.UUID{spot.ID},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Nature Adventure", saved.Name)
	mockRepo.AssertExpectations(t)
	mockSpots.AssertExpectations(t)
}

func TestQuickTrip_NameDerivedFromSpot(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	mockRepo := new(MockItineraryRepo)
	mockSpots := new(MockSpotSource)
	service := newTestService(mockRepo, mockSpots)

	spot := models.TouristSpot{ID: uuid.New(), Name: "Cagsawa Ruins", Category: []string{"Historical"}}
	mockSpots.On("GetByID", mock.Anything, spot.ID).Return(&spot, nil).Once()
	mockRepo.On("Insert", mock.Anything, mock.MatchedBy(func(it *models.Itinerary) bool {
		return it.Name == "Quick Trip - Cagsawa Ruins" && len(it.Spots) == 1
	})).Return(&models.Itinerary{Name: "Quick Trip - Cagsawa Ruins"}, nil).Once()

	saved, err := service.QuickTrip(ctx, userID, spot.ID)

	assert.NoError(t, err)
	assert.Equal(t, "Quick Trip - Cagsawa Ruins", saved.Name)
	mockRepo.AssertExpectations(t)
}

func TestQuickTrip_MissingSpot(t *testing.T) {
	mockRepo := new(MockItineraryRepo)
	mockSpots := new(MockSpotSource)
	service := newTestService(mockRepo, mockSpots)

	spotID := uuid.New()
	mockSpots.On("GetByID", mock.Anything, spotID).Return(nil, models.ErrNotFound).Once()

	_, err := service.QuickTrip(context.Background(), uuid.New(), spotID)

	assert.ErrorIs(t, err, models.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestDeleteItinerary_OwnerScoped(t *testing.T) {
	mockRepo := new(MockItineraryRepo)
	service := newTestService(mockRepo, new(MockSpotSource))

	userID := uuid.New()
	itineraryID := uuid.New()
	mockRepo.On("DeleteOwned", mock.Anything, userID, itineraryID).Return(nil).Once()

	err := service.DeleteItinerary(context.Background(), userID, itineraryID)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
