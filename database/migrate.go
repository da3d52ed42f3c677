package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
)

var gormDB *gorm.DB

// ConnectGorm opens a shared GORM connection using the configured DSN.
// TranslateError is on so duplicate-key failures surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate migrates every model and seeds the static category list.
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	// uuid_generate_v4 backs every primary key default
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to enable uuid-ossp: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Company{},
		&models.JobCategory{},
		&models.Job{},
		&models.JobApplication{},
		&models.SavedJob{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	return SeedCategories(db)
}

// SeedCategories inserts the default job categories when missing.
func SeedCategories(db *gorm.DB) error {
	defaults := []string{
		"Engineering",
		"Design",
		"Product",
		"Marketing",
		"Sales",
		"Customer Support",
		"Finance",
		"Operations",
	}

	for _, name := range defaults {
		var count int64
		if err := db.Model(&models.JobCategory{}).Where("name = ?", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.JobCategory{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
