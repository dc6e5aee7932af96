package routes

import (
	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterInterviewRoutes registers all routes related to interviews
func RegisterInterviewRoutes(rg *gin.RouterGroup, interviewHandler handlers.InterviewHandlerInterface, authMiddleware gin.HandlerFunc) {
	interviews := rg.Group("/interviews")
	interviews.Use(authMiddleware)
	{
		interviews.GET("/my", interviewHandler.GetMyInterviews)

		interviews.GET("/", middleware.RequireRecruitingAccess(), interviewHandler.GetInterviews)
		interviews.GET("/:id", interviewHandler.GetInterviewByID)
		interviews.POST("/", middleware.RequireRecruitingAccess(), interviewHandler.ScheduleInterview)
		interviews.PUT("/:id", middleware.RequireRecruitingAccess(), interviewHandler.UpdateInterview)
		interviews.DELETE("/:id", middleware.RequireAdmin(), interviewHandler.DeleteInterview)
	}
}
