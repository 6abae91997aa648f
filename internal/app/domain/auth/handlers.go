package auth

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
	cfg     JWTConfig
	logger  *zap.Logger
}

func NewHandler(service Service, cfg JWTConfig, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) handleAuthError(c *gin.Context, err error, operation string) {
	h.logger.Error("Auth operation failed", zap.String("operation", operation), zap.Error(err))

	switch {
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
	case errors.Is(err, models.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Authentication failed. Please try again later."})
	}
}

func (h *Handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(TokenCookieName, token, int(h.cfg.TokenExpiration.Seconds()), "/", "", false, true)
}

// Register handles POST /auth/register.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username, email and password are required"})
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.handleAuthError(c, err, "register")
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

// Login handles POST /auth/login.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleAuthError(c, err, "login")
		return
	}

	h.setAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout handles POST /auth/logout by expiring the cookie.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(TokenCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// Session handles GET /auth/session, the single place the SPA reads the
// current identity from. The auth middleware populates the context keys;
// they are read directly here to keep this package free of a middleware
// dependency.
func (h *Handler) Session(c *gin.Context) {
	v, ok := c.Get("user_id")
	userID, isID := v.(uuid.UUID)
	if !ok || !isID || userID == uuid.Nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user_id":       userID,
		"email":         c.GetString("user_email"),
		"username":      c.GetString("user_name"),
	})
}
