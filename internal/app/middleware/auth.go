package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wandererhq/wanderer/internal/app/domain/auth"
)

// extractToken checks the auth cookie first (browser sessions), then the
// Authorization header (API clients).
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.TokenCookieName); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return ""
}

// AuthRequired validates the JWT and populates the user context keys.
// This is the single session acquisition point: handlers read the context
// instead of re-resolving the session themselves.
func AuthRequired(jwtService *auth.JWTService, cfg auth.JWTConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := jwtService.ValidateToken(cfg, tokenString)
		if err != nil {
			logger.Warn("Invalid auth token", zap.String("path", c.Request.URL.Path), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(UserEmailKey, claims.Email)
		c.Set(UserNameKey, claims.Username)
		c.Set(AuthenticatedKey, true)
		c.Next()
	}
}

// AuthOptional populates the user context when a valid token is present but
// lets anonymous requests through.
func AuthOptional(jwtService *auth.JWTService, cfg auth.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.Set(AuthenticatedKey, false)
			c.Next()
			return
		}
		claims, err := jwtService.ValidateToken(cfg, tokenString)
		if err == nil {
			if userID, perr := uuid.Parse(claims.UserID); perr == nil {
				c.Set(UserIDKey, userID)
				c.Set(UserEmailKey, claims.Email)
				c.Set(UserNameKey, claims.Username)
				c.Set(AuthenticatedKey, true)
				c.Next()
				return
			}
		}
		c.Set(AuthenticatedKey, false)
		c.Next()
	}
}
