package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RoleChecker answers whether a user holds a given role. Implemented by the
// auth repository over the user_roles table.
type RoleChecker interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
}

// AdminRequired gates the admin CRUD surface. Must run after AuthRequired.
// Non-admins get 403, the API analogue of the dashboard redirect.
func AdminRequired(roles RoleChecker, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		isAdmin, err := roles.HasRole(c.Request.Context(), userID, "admin")
		if err != nil {
			logger.Error("Admin role lookup failed", zap.String("user_id", userID.String()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to verify permissions"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}

		c.Next()
	}
}
