package middleware

import (
	"log"
	"net/http"

	"hr-backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RequireRecruitingAccess allows only roles that manage recruiting (admin and
// HR). Must run after JWTAuthMiddleware.
func RequireRecruitingAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !role.CanManageRecruiting() {
			log.Printf("Role middleware: role %s denied recruiting access on %s", role, c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireAdmin allows only the admin role. Must run after JWTAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		if !role.CanDeleteRecords() {
			log.Printf("Role middleware: role %s denied admin access on %s", role, c.FullPath())
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// RequireRoles allows any of the given roles. Must run after JWTAuthMiddleware.
func RequireRoles(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		log.Printf("Role middleware: role %s denied on %s", role, c.FullPath())
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}
