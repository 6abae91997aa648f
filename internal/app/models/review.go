package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating + optional comment against one spot. A user may leave
// more than one review for the same spot.
type Review struct {
	ID        uuid.UUID `json:"id"`
	SpotID    uuid.UUID `json:"spot_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ReviewPage is the reviews listing with its client-facing aggregate.
// AverageRating is the arithmetic mean rounded to one decimal; it is zero
// when Count is zero so an empty set never renders NaN.
type ReviewPage struct {
	Reviews       []Review `json:"reviews"`
	Count         int      `json:"count"`
	AverageRating float64  `json:"average_rating"`
}

// CreateReviewRequest is the submission payload. Rating must be 1..5.
type CreateReviewRequest struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}
