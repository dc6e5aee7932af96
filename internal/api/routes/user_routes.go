package routes

import (
	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers all routes related to users and authentication
func RegisterUserRoutes(rg *gin.RouterGroup, userHandler handlers.UserHandlerInterface, authMiddleware gin.HandlerFunc) {
	// --- Authentication Routes ---
	auth := rg.Group("/auth")
	{
		auth.POST("/register", userHandler.Register)
		auth.POST("/login", userHandler.Login)
		auth.POST("/refresh", userHandler.Refresh)
		auth.POST("/logout", authMiddleware, userHandler.Logout)
		auth.PUT("/password", authMiddleware, userHandler.UpdatePassword)
	}

	// --- User Routes ---
	users := rg.Group("/users")
	users.Use(authMiddleware)
	{
		users.GET("/me", userHandler.Me)
		users.GET("/", middleware.RequireRecruitingAccess(), userHandler.GetUsers)
		users.GET("/:id", middleware.RequireRecruitingAccess(), userHandler.GetUserByID)
		users.POST("/", middleware.RequireAdmin(), userHandler.CreateUser)
		users.PUT("/:id", middleware.RequireAdmin(), userHandler.UpdateUser)
		users.DELETE("/:id", middleware.RequireAdmin(), userHandler.DeleteUser)
	}
}
