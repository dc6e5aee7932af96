package routes

import (
	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to job postings
func RegisterJobRoutes(rg *gin.RouterGroup, jobHandler handlers.JobHandlerInterface, authMiddleware gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		// Public browsing: candidates see postings without an account.
		jobs.GET("/", jobHandler.GetJobs)
		jobs.GET("/:id", jobHandler.GetJobByID)

		jobs.POST("/", authMiddleware, middleware.RequireRecruitingAccess(), jobHandler.CreateJob)
		jobs.PUT("/:id", authMiddleware, middleware.RequireRecruitingAccess(), jobHandler.UpdateJob)
		jobs.PATCH("/:id/toggle", authMiddleware, middleware.RequireRecruitingAccess(), jobHandler.ToggleJobStatus)
		jobs.DELETE("/:id", authMiddleware, middleware.RequireAdmin(), jobHandler.DeleteJob)
	}
}
