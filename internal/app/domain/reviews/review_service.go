package reviews

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
	"github.com/wandererhq/wanderer/internal/observability/metrics"
)

var _ Service = (*ServiceImpl)(nil)

const anonymousAuthor = "Anonymous"

// SpotChecker verifies the target spot exists before a review is accepted.
type SpotChecker interface {
	GetByID(ctx context.Context, spotID uuid.UUID) (*models.TouristSpot, error)
}

// Service handles review listing, submission and author-only deletion.
type Service interface {
	ListForSpot(ctx context.Context, spotID uuid.UUID) (*models.ReviewPage, error)
	CreateReview(ctx context.Context, userID, spotID uuid.UUID, req models.CreateReviewRequest) (*models.Review, error)
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error
}

type ServiceImpl struct {
	repo   Repository
	spots  SpotChecker
	logger *zap.Logger
}

func NewServiceImpl(repo Repository, spots SpotChecker, logger *zap.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		spots:  spots,
		logger: logger,
	}
}

// AverageRating is the arithmetic mean rounded to one decimal place. An empty
// slice yields 0 so the client never sees NaN.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for i := range reviews {
		sum += reviews[i].Rating
	}
	mean := float64(sum) / float64(len(reviews))
	return math.Round(mean*10) / 10
}

// ListForSpot returns a spot's reviews newest first, each enriched with the
// author's display name via a single batched profile lookup.
func (s *ServiceImpl) ListForSpot(ctx context.Context, spotID uuid.UUID) (*models.ReviewPage, error) {
	reviews, err := s.repo.GetBySpot(ctx, spotID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(reviews))
	authorIDs := make([]uuid.UUID, 0, len(reviews))
	for i := range reviews {
		if _, ok := seen[reviews[i].UserID]; ok {
			continue
		}
		seen[reviews[i].UserID] = struct{}{}
		authorIDs = append(authorIDs, reviews[i].UserID)
	}

	names, err := s.repo.GetAuthorNames(ctx, authorIDs)
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		if name, ok := names[reviews[i].UserID]; ok && name != "" {
			reviews[i].UserName = name
		} else {
			reviews[i].UserName = anonymousAuthor
		}
	}

	return &models.ReviewPage{
		Reviews:       reviews,
		Count:         len(reviews),
		AverageRating: AverageRating(reviews),
	}, nil
}

// CreateReview validates and stores a new review against an existing spot.
func (s *ServiceImpl) CreateReview(ctx context.Context, userID, spotID uuid.UUID, req models.CreateReviewRequest) (*models.Review, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("sign in to leave a review: %w", models.ErrUnauthenticated)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5: %w", models.ErrValidation)
	}
	if req.Comment != nil {
		trimmed := strings.TrimSpace(*req.Comment)
		if trimmed == "" {
			req.Comment = nil
		} else {
			req.Comment = &trimmed
		}
	}

	// The spot must still exist; a stale detail page cannot create an
	// orphaned review.
	if _, err := s.spots.GetByID(ctx, spotID); err != nil {
		return nil, err
	}

	review := &models.Review{
		SpotID:  spotID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	saved, err := s.repo.Insert(ctx, review)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Review created",
		zap.String("spotID", spotID.String()),
		zap.String("userID", userID.String()),
		zap.Int("rating", req.Rating))
	if m := metrics.Get(); m != nil {
		m.ReviewsCreatedTotal.Add(ctx, 1)
	}
	return saved, nil
}

// DeleteReview removes a review only when the caller wrote it.
func (s *ServiceImpl) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return fmt.Errorf("only the author can delete a review: %w", models.ErrForbidden)
	}
	return s.repo.Delete(ctx, reviewID)
}
