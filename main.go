package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hr-backend/config"
	"hr-backend/internal/app"
	"hr-backend/internal/database"
	"hr-backend/internal/server"
	"hr-backend/internal/uploads"

	"github.com/go-playground/validator/v10"
)

// @title           HR Backend API
// @version         1.0
// @description     Recruiting and HR back-office API: job postings, candidate applications with resume upload, interviews, offers and employee records.

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// --- Initialize Database ---
	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- Initialize Resume Uploader ---
	uploader, err := uploads.NewCloudinaryUploader(cfg.Cloudinary)
	if err != nil {
		log.Fatalf("Failed to initialize resume uploader: %v", err)
	}

	validate := validator.New()

	application := &app.Application{
		Config:      cfg,
		DB:          db,
		RedisClient: redisClient,
		Uploader:    uploader,
		Validator:   validate,
	}

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Application gracefully stopped.")
}
