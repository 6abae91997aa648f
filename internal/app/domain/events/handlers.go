package events

import (
	"errors"
	"net/http"
	"time"

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

func (h *Handler) handleEventError(c *gin.Context, err error, operation string) {
	h.logger.Error("Event operation failed", zap.String("operation", operation), zap.Error(err))

	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
	}
}

// eventRequest accepts EventDate as "2006-01-02".
type eventRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	EventType    *string `json:"event_type"`
	Location     string  `json:"location" binding:"required"`
	Municipality *string `json:"municipality"`
	EventDate    *string `json:"event_date"`
	ImageURL     *string `json:"image_url"`
}

func (r eventRequest) params() (EventParams, error) {
	params := EventParams{
		Name:         r.Name,
		Description:  r.Description,
		EventType:    r.EventType,
		Location:     r.Location,
		Municipality: r.Municipality,
		ImageURL:     r.ImageURL,
	}
	if r.EventDate != nil && *r.EventDate != "" {
		date, err := time.Parse("2006-01-02", *r.EventDate)
		if err != nil {
			return EventParams{}, err
		}
		params.EventDate = &date
	}
	return params, nil
}

// List handles GET /events.
func (h *Handler) List(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		h.handleEventError(c, err, "list")
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}

// Get handles GET /events/:id.
func (h *Handler) Get(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	event, err := h.service.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleEventError(c, err, "get")
		return
	}
	c.JSON(http.StatusOK, event)
}

// Create handles POST /admin/events.
func (h *Handler) Create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and location are required"})
		return
	}

	params, err := req.params()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), params)
	if err != nil {
		h.handleEventError(c, err, "create")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// Update handles PUT /admin/events/:id.
func (h *Handler) Update(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and location are required"})
		return
	}

	params, err := req.params()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event_date must be YYYY-MM-DD"})
		return
	}

	event, err := h.service.UpdateEvent(c.Request.Context(), eventID, params)
	if err != nil {
		h.handleEventError(c, err, "update")
		return
	}
	c.JSON(http.StatusOK, event)
}

// Delete handles DELETE /admin/events/:id.
func (h *Handler) Delete(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), eventID); err != nil {
		h.handleEventError(c, err, "delete")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
}
