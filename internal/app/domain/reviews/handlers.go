package reviews

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

func (h *Handler) handleReviewError(c *gin.Context, err error, operation string) {
	h.logger.Error("Review operation failed", zap.String("operation", operation), zap.Error(err))

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Review or spot not found"})
	case errors.Is(err, models.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own reviews"})
	case errors.Is(err, models.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in first"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}

// ListForSpot handles GET /spots/:id/reviews.
func (h *Handler) ListForSpot(c *gin.Context) {
	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spot id"})
		return
	}

	page, err := h.service.ListForSpot(c.Request.Context(), spotID)
	if err != nil {
		h.handleReviewError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, page)
}

// Create handles POST /spots/:id/reviews.
func (h *Handler) Create(c *gin.Context) {
	userID, ok := middleware.MustGetUserID(c)
	if !ok {
		return
	}

	spotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid spot id"})
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating is required"})
		return
	}

	review, err := h.service.CreateReview(c.Request.Context(), userID, spotID, req)
	if err != nil {
		h.handleReviewError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, review)
}

// Delete handles DELETE /reviews/:id.
func (h *Handler) Delete(c *gin.Context) {
	userID, ok := middleware.MustGetUserID(c)
	if !ok {
		return
	}

	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review id"})
		return
	}

	if err := h.service.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		h.handleReviewError(c, err, "delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "review deleted"})
}
