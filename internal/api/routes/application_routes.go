package routes

import (
	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to job applications
func RegisterApplicationRoutes(rg *gin.RouterGroup, applicationHandler handlers.ApplicationHandlerInterface, authMiddleware, optionalAuthMiddleware gin.HandlerFunc) {
	applications := rg.Group("/applications")
	{
		// Submission accepts both anonymous visitors and logged-in
		// candidates; a valid token links the application to the account.
		applications.POST("/", optionalAuthMiddleware, applicationHandler.Apply)

		applications.GET("/my", authMiddleware, applicationHandler.GetMyApplications)

		applications.GET("/", authMiddleware, middleware.RequireRecruitingAccess(), applicationHandler.GetApplications)
		applications.GET("/job/:jobId", authMiddleware, middleware.RequireRecruitingAccess(), applicationHandler.GetApplicationsByJob)
		applications.GET("/:id", authMiddleware, middleware.RequireRecruitingAccess(), applicationHandler.GetApplicationByID)
		applications.PUT("/:id", authMiddleware, middleware.RequireRecruitingAccess(), applicationHandler.ReviewApplication)
		applications.DELETE("/:id", authMiddleware, middleware.RequireAdmin(), applicationHandler.DeleteApplication)
	}
}
