package handlers

import (
	"errors"
	"log"
	"net/http"

	"hr-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service error into the matching HTTP
// response. Handlers call this after any service method failure so the
// status mapping stays in one place.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUpload):
		// The upstream object store failed or timed out.
		c.JSON(http.StatusBadGateway, gin.H{"error": "Resume upload failed, please try again"})
	default:
		log.Printf("Unhandled service error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
