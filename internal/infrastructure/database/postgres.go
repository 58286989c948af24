package database

import (
	"fmt"

	"go-hospital-management/config"
	"go-hospital-management/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}

// Migrate creates any missing tables so a fresh database is usable on first
// boot. Existing tables and their data are left untouched.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Patient{},
		&entity.Doctor{},
		&entity.Nurse{},
		&entity.Medicine{},
		&entity.Bed{},
		&entity.CanteenItem{},
		&entity.CanteenOrder{},
		&entity.Bill{},
	)
}
