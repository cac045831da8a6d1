package database

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"senvo-backend/internal/config"
	"senvo-backend/internal/models"
)

// Open connects to Postgres, tunes the connection pool and migrates the
// schema. Tables are created parent-first so foreign keys resolve.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "connecting to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "accessing connection pool")
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.AutoMigrate(
		&models.Country{},
		&models.State{},
		&models.City{},
		&models.Address{},
		&models.Carrier{},
		&models.Shipment{},
		&models.Package{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "running migrations")
	}

	return db, nil
}
