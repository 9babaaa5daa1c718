package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/AdventureLog/worldtravel-backend/src/config"
	"github.com/AdventureLog/worldtravel-backend/src/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres database named by cfg.DatabaseDSN.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseDSN == "" {
		return nil, errors.New("DB_DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	slog.Info("worldtravel DB connected successfully")
	return db, nil
}

// Migrate creates or updates the worldtravel tables. On postgres the PostGIS
// extension is enabled first so region geometry gets a native column.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS postgis").Error; err != nil {
			return fmt.Errorf("enable postgis: %w", err)
		}
	}

	if err := db.AutoMigrate(&models.CountryModel{}, &models.RegionModel{}, &models.VisitedRegionModel{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
