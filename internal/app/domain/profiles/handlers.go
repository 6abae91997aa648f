package profiles

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/middleware"
	"github.com/wandererhq/wanderer/internal/app/models"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

func (h *Handler) handleProfileError(c *gin.Context, err error, operation string) {
	h.logger.Error("Profile operation failed", zap.String("operation", operation), zap.Error(err))

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not found"})
	case errors.Is(err, models.ErrOnboardingDone):
		c.JSON(http.StatusConflict, gin.H{"error": "Onboarding has already been completed"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}

// GetProfile handles GET /profile.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := middleware.MustGetUserID(c)
	if !ok {
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleProfileError(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.MustGetUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		h.handleProfileError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// OnboardingSteps handles GET /onboarding/steps.
func (h *Handler) OnboardingSteps(c *gin.Context) {
	steps := h.service.OnboardingSteps()
	c.JSON(http.StatusOK, gin.H{"steps": steps, "count": len(steps)})
}

// CompleteOnboarding handles POST /onboarding/complete.
func (h *Handler) CompleteOnboarding(c *gin.Context) {
	userID, ok := middleware.MustGetUserID(c)
	if !ok {
		return
	}

	var answers models.OnboardingAnswers
	if err := c.ShouldBindJSON(&answers); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid onboarding payload"})
		return
	}

	if err := h.service.CompleteOnboarding(c.Request.Context(), userID, &answers); err != nil {
		h.handleProfileError(c, err, "onboarding")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Wanderer! Your preferences have been saved."})
}
