package models

import (
	"time"

	"github.com/google/uuid"
)

// Restaurant is an admin-managed dining listing.
type Restaurant struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	FoodType      *string   `json:"food_type"`
	Location      string    `json:"location"`
	Municipality  *string   `json:"municipality"`
	ContactNumber *string   `json:"contact_number"`
	ImageURL      *string   `json:"image_url"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Event is an admin-managed happening with a calendar date.
type Event struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	EventType    *string    `json:"event_type"`
	Location     string     `json:"location"`
	Municipality *string    `json:"municipality"`
	EventDate    *time.Time `json:"event_date"`
	ImageURL     *string    `json:"image_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Accommodation is an admin-managed lodging listing.
type Accommodation struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description"`
	Location      string    `json:"location"`
	Municipality  *string   `json:"municipality"`
	ContactNumber *string   `json:"contact_number"`
	ImageURL      *string   `json:"image_url"`
	PriceRange    *string   `json:"price_range"`
	Amenities     []string  `json:"amenities"`
	Rating        float64   `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HomeSummary backs the landing page stat strip.
type HomeSummary struct {
	Spots          int `json:"spots"`
	Restaurants    int `json:"restaurants"`
	Events         int `json:"events"`
	Accommodations int `json:"accommodations"`
}
