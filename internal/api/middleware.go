package api

import (
	"net/http"

	"github.com/evergreenhands/nonprofit-backend/internal/admin"
	"github.com/evergreenhands/nonprofit-backend/internal/auth"
	"github.com/gin-gonic/gin"
)

// RequireActiveAdmin ensures the token belongs to an admin account that
// still exists and has not been deactivated since the token was issued.
// It MUST be used after auth.AuthRequired middleware.
func RequireActiveAdmin(adminService admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID := auth.GetAdminID(c)
		if adminID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		a, err := adminService.GetByID(c.Request.Context(), adminID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "admin not found"})
			return
		}

		if !a.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin account is inactive"})
			return
		}

		c.Next()
	}
}
