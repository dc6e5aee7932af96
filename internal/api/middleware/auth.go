package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"hr-backend/internal/auth"
	"hr-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid" // For parsing UUID from claim
)

const (
	authorizationHeader = "Authorization"
	userCtx             = "userID"    // Key to store user ID in context
	userEmailCtx        = "userEmail" // Key to store the authenticated email
	userRoleCtx         = "userRole"  // Key to store the user's role
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader(authorizationHeader)
	if authHeader == "" {
		return "", false
	}
	headerParts := strings.Split(authHeader, " ")
	if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
		return "", false
	}
	return headerParts[1], true
}

func setIdentity(c *gin.Context, claims *auth.Claims) error {
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return err
	}
	c.Set(userCtx, userID)
	c.Set(userEmailCtx, claims.Email)
	c.Set(userRoleCtx, claims.Role)
	return nil
}

// JWTAuthMiddleware creates a Gin middleware for JWT authentication.
func JWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			log.Println("Auth middleware: missing or malformed Authorization header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		claims, err := auth.ParseAccessToken(jwtSecret, tokenString)
		if err != nil {
			log.Printf("Auth middleware: Error parsing token: %v", err)
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			return
		}

		if err := setIdentity(c, claims); err != nil {
			log.Printf("Auth middleware: Error parsing user ID from token subject '%s': %v", claims.Subject, err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
			return
		}
		c.Next()
	}
}

// OptionalJWTAuthMiddleware authenticates when a valid token is present but
// lets anonymous requests through. Application submission uses this: the same
// endpoint serves logged-in candidates and visitors.
func OptionalJWTAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			c.Next()
			return
		}

		claims, err := auth.ParseAccessToken(jwtSecret, tokenString)
		if err != nil {
			// A presented-but-invalid token is rejected rather than treated
			// as anonymous, so an expired session does not silently submit
			// an unlinked application.
			log.Printf("Auth middleware: rejecting invalid optional token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		if err := setIdentity(c, claims); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid user identifier in token"})
			return
		}
		c.Next()
	}
}

// Helper function to get user ID from context (optional but convenient)
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, error) {
	userIDAny, exists := c.Get(userCtx)
	if !exists {
		return uuid.Nil, errors.New("user ID not found in context")
	}

	userID, ok := userIDAny.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user ID in context is of invalid type")
	}

	return userID, nil
}

// GetUserEmailFromContext returns the authenticated user's email.
func GetUserEmailFromContext(c *gin.Context) (string, error) {
	emailAny, exists := c.Get(userEmailCtx)
	if !exists {
		return "", errors.New("user email not found in context")
	}

	email, ok := emailAny.(string)
	if !ok {
		return "", errors.New("user email in context is of invalid type")
	}

	return email, nil
}

// GetUserRoleFromContext returns the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (models.Role, error) {
	roleAny, exists := c.Get(userRoleCtx)
	if !exists {
		return "", errors.New("user role not found in context")
	}

	role, ok := roleAny.(models.Role)
	if !ok {
		return "", errors.New("user role in context is of invalid type")
	}

	return role, nil
}
