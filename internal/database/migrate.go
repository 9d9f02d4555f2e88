package database

import (
	"gorm.io/gorm"

	"github.com/bhojanbuddy/backend/internal/models"
)

// RunMigrations brings the schema up to date for all models.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BMIRecord{},
		&models.FoodEntry{},
	)
}
