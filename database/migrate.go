package database

import (
	"fmt"
	"time"

	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate applies the schema for all models.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults need the extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to create uuid extension: %w", err)
	}

	start := time.Now()
	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Skill{},
		&models.SwapRequest{},
		&models.Rating{},
	)
	logger.DBLog("auto_migrate", "", time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}
