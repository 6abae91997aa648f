package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile mirrors the auth identity one-to-one and is created implicitly at
// signup. OnboardingAnswers stays nil until the wizard completes.
type Profile struct {
	ID                uuid.UUID          `json:"id"`
	FullName          *string            `json:"full_name"`
	Bio               *string            `json:"bio"`
	AvatarURL         *string            `json:"avatar_url"`
	OnboardingAnswers *OnboardingAnswers `json:"onboarding_answers"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

// UpdateProfileRequest edits the display fields only.
type UpdateProfileRequest struct {
	FullName  string  `json:"full_name"`
	Bio       *string `json:"bio"`
	AvatarURL *string `json:"avatar_url"`
}

// OnboardingAnswers is the full answer set of the three-step preference
// wizard. Every field is single-select from a fixed option list; the typed
// shape replaces the free-form mapping the first-generation client stored.
type OnboardingAnswers struct {
	// Step 1 - Exploring & Activities
	Exploring  string `json:"exploring"`
	Weekend    string `json:"weekend"`
	Preference string `json:"preference"`
	// Step 2 - Food & Drink
	Food        string `json:"food"`
	Restaurant  string `json:"restaurant"`
	UnusualFood string `json:"unusual_food"`
	// Step 3 - Logistics & Vibe
	Transport string `json:"transport"`
	Location  string `json:"location"`
	Planning  string `json:"planning"`
}

// OnboardingQuestion is one single-select question inside a step.
type OnboardingQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// OnboardingStep groups the questions shown on one wizard page.
type OnboardingStep struct {
	Step      int                  `json:"step"`
	Title     string               `json:"title"`
	Questions []OnboardingQuestion `json:"questions"`
}
