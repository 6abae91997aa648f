package models

import (
	"time"

	"github.com/google/uuid"
)

// TouristSpot is a live content row managed through the admin panel and read
// everywhere else. Category is an open tag list; the UI offers a closed set
// but the data layer does not enforce one.
type TouristSpot struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Location      string    `json:"location"`
	Municipality  *string   `json:"municipality"`
	Category      []string  `json:"category"`
	ContactNumber *string   `json:"contact_number"`
	ImageURL      *string   `json:"image_url"`
	Rating        float64   `json:"rating"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SpotSnapshot is the immutable value copy embedded in a saved itinerary.
// It deliberately carries no link back to the live row: later edits or
// deletions of a tourist_spots row must not propagate into saved plans.
type SpotSnapshot struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Location     string    `json:"location"`
	Municipality *string   `json:"municipality"`
	Category     []string  `json:"category"`
	ImageURL     *string   `json:"image_url"`
}

// Snapshot copies the fields a saved itinerary keeps.
func (s *TouristSpot) Snapshot() SpotSnapshot {
	return SpotSnapshot{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		Location:     s.Location,
		Municipality: s.Municipality,
		Category:     append([]string(nil), s.Category...),
		ImageURL:     s.ImageURL,
	}
}

// SpotFilter narrows the explore listing. Query is a case-insensitive
// substring match against name and municipality; Categories requires the
// spot to carry every listed tag.
type SpotFilter struct {
	Query      string
	Categories []string
}

// MapMarker is the contract consumed by the client-side map pane.
type MapMarker struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  []string  `json:"category"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}
