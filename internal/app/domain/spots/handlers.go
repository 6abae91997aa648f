package spots

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/models"
	"github.com/wandererhq/wanderer/internal/pkg/utils"
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

func (h *Handler) handleSpotError(c *gin.Context, err error, operation string) {
	h.logger.Error("Spot operation failed", zap.String("operation", operation), zap.Error(err))

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Spot not found"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}

// spotRequest is the admin form payload. Category accepts a JSON array or a
// comma-separated string.
type spotRequest struct {
	Name          string            `json:"name" binding:"required"`
	Description   *string           `json:"description"`
	Location      string            `json:"location" binding:"required"`
	Municipality  *string           `json:"municipality"`
	Category      models.StringList `json:"category"`
	ContactNumber *string           `json:"contact_number"`
	ImageURL      *string           `json:"image_url"`
	Latitude      *float64          `json:"latitude"`
	Longitude     *float64          `json:"longitude"`
}

func (r spotRequest) params() SpotParams {
	return SpotParams{
		Name:          r.Name,
		Description:   r.Description,
		Location:      r.Location,
		Municipality:  r.Municipality,
		Category:      r.Category,
		ContactNumber: r.ContactNumber,
		ImageURL:      r.ImageURL,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}
}

// ListSpots handles GET /spots?q=...&categories=a,b.
func (h *Handler) ListSpots(c *gin.Context) {
	filter := models.SpotFilter{
		Query:      c.Query("q"),
		Categories: utils.SplitCommaList(c.Query("categories")),
	}

	spots, err := h.service.ListSpots(c.Request.Context(), filter)
	if err != nil {
		h.handleSpotError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"spots": spots, "count": len(spots)})
}

// GetSpot handles GET /spots/:id.
func (h *Handler) GetSpot(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spot id"})
		return
	}

	spot, err := h.service.GetSpot(c.Request.Context(), spotID)
	if err != nil {
		h.handleSpotError(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, spot)
}

// MapMarkers handles GET /map/markers.
func (h *Handler) MapMarkers(c *gin.Context) {
	markers, err := h.service.MapMarkers(c.Request.Context())
	if err != nil {
		h.handleSpotError(c, err, "markers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"markers": markers, "count": len(markers)})
}

// CreateSpot handles POST /admin/spots.
func (h *Handler) CreateSpot(c *gin.Context) {
	var req spotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and location are required"})
		return
	}

	spot, err := h.service.CreateSpot(c.Request.Context(), req.params())
	if err != nil {
		h.handleSpotError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, spot)
}

// UpdateSpot handles PUT /admin/spots/:id.
func (h *Handler) UpdateSpot(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spot id"})
		return
	}

	var req spotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and location are required"})
		return
	}

	spot, err := h.service.UpdateSpot(c.Request.Context(), spotID, req.params())
	if err != nil {
		h.handleSpotError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, spot)
}

// DeleteSpot handles DELETE /admin/spots/:id.
func (h *Handler) DeleteSpot(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spot id"})
		return
	}

	if err := h.service.DeleteSpot(c.Request.Context(), spotID); err != nil {
		h.handleSpotError(c, err, "delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "spot deleted"})
}
