package models

import (
	"time"

	"github.com/google/uuid"
)

// Itinerary is a named, immutable collection of spot snapshots owned by one
// user. It is inserted once and never updated in place.
type Itinerary struct {
	ID                 uuid.UUID      `json:"id"`
	UserID             uuid.UUID      `json:"user_id"`
	Name               string         `json:"name"`
	SelectedCategories []string       `json:"selected_categories"`
	Spots              []SpotSnapshot `json:"spots"`
	CreatedAt          time.Time      `json:"created_at"`
}

// GenerateItineraryRequest asks for recommendation candidates.
type GenerateItineraryRequest struct {
	Categories []string `json:"categories"`
}

// SaveItineraryRequest persists the pruned candidate set.
type SaveItineraryRequest struct {
	Categories []string    `json:"categories"`
	SpotIDs    []uuid.UUID `json:"spot_ids"`
}

// QuickTripRequest creates a one-spot itinerary straight from the browse grid.
type QuickTripRequest struct {
	SpotID uuid.UUID `json:"spot_id"`
}
