package database

import (
	"fmt"

	"github.com/AkhilKonduru1/Eventure/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
// Tables are created idempotently at process start if absent.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.SavedAdventure{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
