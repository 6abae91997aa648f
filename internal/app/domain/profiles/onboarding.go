package profiles

import (
	"fmt"

	"github.com/wandererhq/wanderer/internal/app/models"
)

// onboardingSteps is the fixed three-page preference wizard. Answers are
// validated against these option lists on submission.
var onboardingSteps = []models.OnboardingStep{
	{
		Step:  1,
		Title: "Exploring & Activities",
		Questions: []models.OnboardingQuestion{
			{
				ID:       "exploring",
				Question: "What do you always look for in a new city?",
				Options:  []string{"Tourist maps", "Hidden gems", "Both"},
			},
			{
				ID:       "weekend",
				Question: "Ideal weekend activity?",
				Options:  []string{"Hiking", "Beach relaxing", "Food tours", "Cultural sites"},
			},
			{
				ID:       "preference",
				Question: "Do you prefer history or modern art?",
				Options:  []string{"History", "Modern art", "Both equally"},
			},
		},
	},
	{
		Step:  2,
		Title: "Food & Drink",
		Questions: []models.OnboardingQuestion{
			{
				ID:       "food",
				Question: "What food excites you most when traveling?",
				Options:  []string{"Street food", "Fine dining", "Local specialties", "Cafes & desserts"},
			},
			{
				ID:       "restaurant",
				Question: "Cozy or trendy restaurants?",
				Options:  []string{"Cozy", "Trendy", "No preference"},
			},
			{
				ID:       "unusual_food",
				Question: "Do you try unusual local foods?",
				Options:  []string{"Always", "Sometimes", "Rarely", "Never"},
			},
		},
	},
	{
		Step:  3,
		Title: "Logistics & Vibe",
		Questions: []models.OnboardingQuestion{
			{
				ID:       "transport",
				Question: "Preferred way to get around?",
				Options:  []string{"Walk", "Public transport", "Taxi/Grab", "Rent a vehicle"},
			},
			{
				ID:       "location",
				Question: "Stay in city center or quiet area?",
				Options:  []string{"City center", "Quiet area", "Depends on the trip"},
			},
			{
				ID:       "planning",
				Question: "Plan ahead or go with the flow?",
				Options:  []string{"Detailed planning", "Flexible itinerary", "Complete spontaneity"},
			},
		},
	},
}

// OnboardingSteps returns the wizard definition served to clients.
func OnboardingSteps() []models.OnboardingStep {
	return onboardingSteps
}

// ValidateOnboardingAnswers checks that every question is answered and every
// answer is one of that question's options.
func ValidateOnboardingAnswers(answers *models.OnboardingAnswers) error {
	byID := map[string]string{
		"exploring":    answers.Exploring,
		"weekend":      answers.Weekend,
		"preference":   answers.Preference,
		"food":         answers.Food,
		"restaurant":   answers.Restaurant,
		"unusual_food": answers.UnusualFood,
		"transport":    answers.Transport,
		"location":     answers.Location,
		"planning":     answers.Planning,
	}

	for _, step := range onboardingSteps {
		for _, q := range step.Questions {
			answer := byID[q.ID]
			if answer == "" {
				return fmt.Errorf("question %q is unanswered: %w", q.ID, models.ErrValidation)
			}
			if !containsOption(q.Options, answer) {
				return fmt.Errorf("answer %q is not an option for question %q: %w", answer, q.ID, models.ErrValidation)
			}
		}
	}
	return nil
}

func containsOption(options []string, answer string) bool {
	for _, opt := range options {
		if opt == answer {
			return true
		}
	}
	return false
}
