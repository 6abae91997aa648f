package models

import "errors"

// Domain specific errors shared across handlers, services and repositories.
var (
	ErrNotFound             = errors.New("requested item not found")
	ErrConflict             = errors.New("item already exists or conflict")
	ErrUnauthenticated      = errors.New("authentication required or invalid credentials")
	ErrForbidden            = errors.New("action forbidden")
	ErrBadRequest           = errors.New("bad request")
	ErrValidation           = errors.New("validation failed")
	ErrNoCategoriesSelected = errors.New("at least one interest category is required")
	ErrNoSpotsSelected      = errors.New("at least one destination must be selected")
	ErrOnboardingDone       = errors.New("onboarding already completed")
	ErrUpstream             = errors.New("upstream service failed")
)
