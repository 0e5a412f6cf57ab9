package db

import (
	"fmt"
	"testing"

	"github.com/navjivan/navjivan-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory SQLite database for testing. AboutInfo
// is left out: its text[] column is postgres-only.
func SetupTestDB(t *testing.T) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.MenuItem{},
		&model.MenuCategory{},
		&model.OfferItem{},
		&model.ReviewItem{},
		&model.GalleryImage{},
		&model.Chef{},
		&model.ChefSpecial{},
		&model.ReservationItem{},
		&model.FAQItem{},
		&model.ContactInfo{},
		&model.ContactMessageItem{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db, nil
}
