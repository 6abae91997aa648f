package itineraries

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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

func (h *Handler) handleItineraryError(c *gin.Context, err error, operation string) {
	h.logger.Error("Itinerary operation failed", zap.String("operation", operation), zap.Error(err))

	switch {
	case errors.Is(err, models.ErrNoCategoriesSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one interest"})
	case errors.Is(err, models.ErrNoSpotsSelected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please select at least one destination"})
	case errors.Is(err, models.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in first"})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary or spot not found"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}

// Generate handles POST /itineraries/generate.
func (h *Handler) Generate(c *gin.Context) {
	var req models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categories are required"})
		return
	}

	candidates, err := h.service.GenerateRecommendations(c.Request.Context(), req.Categories)
	if err != nil {
		h.handleItineraryError(c, err, "generate")
		return
	}
	c.JSON(http.StatusOK, gin.H{"spots": candidates, "count": len(candidates)})
}

// Save handles POST /itineraries.
func (h *Handler) Save(c *gin.Context) {
	userID, ok := middleware.MustGetUserID(c)
	if !ok {
		return
	}

	var req models.SaveItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "categories and spot_ids are required"})
		return
	}

	itinerary, err := h.service.SaveItinerary(c.Request.Context(), userID, req)
	if err != nil {
		h.handleItineraryError(c, err, "save")
		return
	}
	c.JSON(http.StatusCreated, itinerary)
}

// QuickTrip handles POST /itineraries/quick.
func (h *Handler) QuickTrip(c *gin.Context) {
	userID, ok := middleware.MustGetUserID(c)
	if !ok {
		return
	}

	var req models.QuickTripRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SpotID == uuid.Nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "spot_id is required"})
		return
	}

	itinerary, err := h.service.QuickTrip(c.Request.Context(), userID, req.SpotID)
	if err != nil {
		h.handleItineraryError(c, err, "quick_trip")
		return
	}
	c.JSON(http.StatusCreated, itinerary)
}

// List handles GET /itineraries.
func (h *Handler) List(c *gin.Context) {
	userID, ok := middleware.MustGetUserID(c)
	if !ok {
		return
	}

	itineraries, err := h.service.ListItineraries(c.Request.Context(), userID)
	if err != nil {
		h.handleItineraryError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"itineraries": itineraries, "count": len(itineraries)})
}

// Delete handles DELETE /itineraries/:id.
func (h *Handler) Delete(c *gin.Context) {
	userID, ok := middleware.MustGetUserID(c)
	if !ok {
		return
	}

	itineraryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid itinerary id"})
		return
	}

	if err := h.service.DeleteItinerary(c.Request.Context(), userID, itineraryID); err != nil {
		h.handleItineraryError(c, err, "delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "itinerary deleted"})
}
