package database

import (
	"fmt"

	"github.com/martinwilchesdev/backend-web-app/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
// It is idempotent and safe to run on every process start; gorm issues
// CREATE TABLE IF NOT EXISTS semantics so concurrent startups cannot race.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
