package weather

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
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

// Current handles GET /weather. The banner treats any failure as "hide the
// widget", so an upstream error maps to 502 with a small payload.
func (h *Handler) Current(c *gin.Context) {
	current, err := h.service.Current(c.Request.Context())
	if err != nil {
		h.logger.Error("Weather lookup failed", zap.Error(err))
		if errors.Is(err, models.ErrUpstream) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Weather is unavailable right now"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again later."})
		return
	}
	c.JSON(http.StatusOK, current)
}
