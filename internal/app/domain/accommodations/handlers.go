package accommodations

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

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

func (h *Handler) handleAccommodationError(c *gin.Context, err error, operation string) {
	h.logger.Error("Accommodation operation failed", zap.String("operation", operation), zap.Error(err))

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}

// accommodationRequest accepts Amenities as a JSON array or a comma string.
type accommodationRequest struct {
	Name          string            `json:"name" binding:"required"`
	Description   *string           `json:"description"`
	Location      string            `json:"location" binding:"required"`
	Municipality  *string           `json:"municipality"`
	ContactNumber *string           `json:"contact_number"`
	ImageURL      *string           `json:"image_url"`
	PriceRange    *string           `json:"price_range"`
	Amenities     models.StringList `json:"amenities"`
	Rating        float64           `json:"rating"`
}

func (r accommodationRequest) params() AccommodationParams {
	return AccommodationParams{
		Name:          r.Name,
		Description:   r.Description,
		Location:      r.Location,
		Municipality:  r.Municipality,
		ContactNumber: r.ContactNumber,
		ImageURL:      r.ImageURL,
		PriceRange:    r.PriceRange,
		Amenities:     r.Amenities,
		Rating:        r.Rating,
	}
}

// List handles GET /accommodations.
func (h *Handler) List(c *gin.Context) {
	accommodations, err := h.service.ListAccommodations(c.Request.Context())
	if err != nil {
		h.handleAccommodationError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accommodations": accommodations, "count": len(accommodations)})
}

// Get handles GET /accommodations/:id.
func (h *Handler) Get(c *gin.Context) {
	accommodationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid accommodation id"})
		return
	}

	accommodation, err := h.service.GetAccommodation(c.Request.Context(), accommodationID)
	if err != nil {
		h.handleAccommodationError(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, accommodation)
}

// Create handles POST /admin/accommodations.
func (h *Handler) Create(c *gin.Context) {
	var req accommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and location are required"})
		return
	}

	accommodation, err := h.service.CreateAccommodation(c.Request.Context(), req.params())
	if err != nil {
		h.handleAccommodationError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, accommodation)
}

// Update handles PUT /admin/accommodations/:id.
func (h *Handler) Update(c *gin.Context) {
	accommodationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid accommodation id"})
		return
	}

	var req accommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and location are required"})
		return
	}

	accommodation, err := h.service.UpdateAccommodation(c.Request.Context(), accommodationID, req.params())
	if err != nil {
		h.handleAccommodationError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, accommodation)
}

// Delete handles DELETE /admin/accommodations/:id.
func (h *Handler) Delete(c *gin.Context) {
	accommodationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid accommodation id"})
		return
	}

	if err := h.service.DeleteAccommodation(c.Request.Context(), accommodationID); err != nil {
		h.handleAccommodationError(c, err, "delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "accommodation deleted"})
}
