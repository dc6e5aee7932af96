package app

import (
	"hr-backend/config"
	"hr-backend/internal/uploads"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Uploader    uploads.Uploader
	Validator   *validator.Validate
}
