package database

import (
	"fmt"

	"github.com/mohammadpnp/staff-admin/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

// AutoMigrate runs schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Department{},
		&models.Role{},
		&models.Permission{},
		&models.User{},
		&models.ServiceRecord{},
		&models.ImportRun{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
