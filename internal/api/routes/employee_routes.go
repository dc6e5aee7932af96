package routes

import (
	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterEmployeeRoutes registers all routes related to employee records
func RegisterEmployeeRoutes(rg *gin.RouterGroup, employeeHandler handlers.EmployeeHandlerInterface, authMiddleware gin.HandlerFunc) {
	employees := rg.Group("/employees")
	employees.Use(authMiddleware, middleware.RequireRecruitingAccess())
	{
		employees.GET("/", employeeHandler.GetEmployees)
		employees.GET("/:id", employeeHandler.GetEmployeeByID)
		employees.POST("/", employeeHandler.CreateEmployee)
		employees.PUT("/:id", employeeHandler.UpdateEmployee)
		employees.DELETE("/:id", middleware.RequireAdmin(), employeeHandler.DeleteEmployee)
	}
}
