package routes

import (
	"log"

	"hr-backend/internal/api/handlers"
	"hr-backend/internal/api/middleware"
	"hr-backend/internal/app"
	"hr-backend/internal/services"
	"hr-backend/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.DB)
	jobRepo := postgres.NewJobRepo(app.DB)
	appRepo := postgres.NewApplicationRepo(app.DB)
	interviewRepo := postgres.NewInterviewRepo(app.DB)
	offerRepo := postgres.NewOfferRepo(app.DB)
	employeeRepo := postgres.NewEmployeeRepo(app.DB)

	// --- Services ---
	userService := services.NewUserService(userRepo, app.RedisClient, app.Config.JWT.Secret, app.Config.JWT.Expiration, app.Config.JWT.RefreshExpiration)
	jobService := services.NewJobService(jobRepo)
	applicationService := services.NewApplicationService(appRepo, jobRepo, app.Uploader, app.Config.Cloudinary.MaxFileSize)
	interviewService := services.NewInterviewService(interviewRepo, appRepo)
	offerService := services.NewOfferService(offerRepo, appRepo)
	employeeService := services.NewEmployeeService(employeeRepo, userRepo)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	jobHandler := handlers.NewJobHandler(jobService, app.Validator)
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)
	interviewHandler := handlers.NewInterviewHandler(interviewService, app.Validator)
	offerHandler := handlers.NewOfferHandler(offerService, app.Validator)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)
	optionalAuthMiddleware := middleware.OptionalJWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware, optionalAuthMiddleware)
	RegisterInterviewRoutes(apiV1, interviewHandler, authMiddleware)
	RegisterOfferRoutes(apiV1, offerHandler, authMiddleware)
	RegisterEmployeeRoutes(apiV1, employeeHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
