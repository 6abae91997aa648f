package restaurants

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

func (h *Handler) handleRestaurantError(c *gin.Context, err error, operation string) {
	h.logger.Error("Restaurant operation failed", zap.String("operation", operation), zap.Error(err))

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}

type restaurantRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   *string `json:"description"`
	FoodType      *string `json:"food_type"`
	Location      string  `json:"location" binding:"required"`
	Municipality  *string `json:"municipality"`
	ContactNumber *string `json:"contact_number"`
	ImageURL      *string `json:"image_url"`
}

func (r restaurantRequest) params() RestaurantParams {
	return RestaurantParams{
		Name:          r.Name,
		Description:   r.Description,
		FoodType:      r.FoodType,
		Location:      r.Location,
		Municipality:  r.Municipality,
		ContactNumber: r.ContactNumber,
		ImageURL:      r.ImageURL,
	}
}

// List handles GET /restaurants.
func (h *Handler) List(c *gin.Context) {
	restaurants, err := h.service.ListRestaurants(c.Request.Context())
	if err != nil {
		h.handleRestaurantError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurants": restaurants, "count": len(restaurants)})
}

// Get handles GET /restaurants/:id.
func (h *Handler) Get(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	restaurant, err := h.service.GetRestaurant(c.Request.Context(), restaurantID)
	if err != nil {
		h.handleRestaurantError(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Create handles POST /admin/restaurants.
func (h *Handler) Create(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and location are required"})
		return
	}

	restaurant, err := h.service.CreateRestaurant(c.Request.Context(), req.params())
	if err != nil {
		h.handleRestaurantError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

// Update handles PUT /admin/restaurants/:id.
func (h *Handler) Update(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and location are required"})
		return
	}

	restaurant, err := h.service.UpdateRestaurant(c.Request.Context(), restaurantID, req.params())
	if err != nil {
		h.handleRestaurantError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// Delete handles DELETE /admin/restaurants/:id.
func (h *Handler) Delete(c *gin.Context) {
	restaurantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid restaurant id"})
		return
	}

	if err := h.service.DeleteRestaurant(c.Request.Context(), restaurantID); err != nil {
		h.handleRestaurantError(c, err, "delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "restaurant deleted"})
}
