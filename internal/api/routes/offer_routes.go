package routes

import (
	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterOfferRoutes registers all routes related to offers
func RegisterOfferRoutes(rg *gin.RouterGroup, offerHandler handlers.OfferHandlerInterface, authMiddleware gin.HandlerFunc) {
	offers := rg.Group("/offers")
	offers.Use(authMiddleware)
	{
		offers.GET("/my", offerHandler.GetMyOffers)

		offers.GET("/", middleware.RequireRecruitingAccess(), offerHandler.GetOffers)
		offers.GET("/:id", offerHandler.GetOfferByID)
		offers.POST("/", middleware.RequireRecruitingAccess(), offerHandler.CreateOffer)
		offers.PUT("/:id", middleware.RequireRecruitingAccess(), offerHandler.UpdateOffer)
		offers.DELETE("/:id", middleware.RequireAdmin(), offerHandler.DeleteOffer)
	}
}
