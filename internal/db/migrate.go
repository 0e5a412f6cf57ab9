package db

import (
	"github.com/navjivan/navjivan-backend/config"
	"github.com/navjivan/navjivan-backend/internal/app/model"
	"github.com/navjivan/navjivan-backend/pkg/logger"
	"github.com/navjivan/navjivan-backend/pkg/util"
)

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
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
		&model.AboutInfo{},
		&model.ContactMessageItem{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed creates the rows the application assumes exist: the singleton
// content rows, a default category set and the admin account.
func Seed(cfg *config.Config) error {
	logger.Info("Seeding baseline data...")

	if err := seedSingletons(); err != nil {
		logger.Error("Failed to seed singleton rows", err)
		return err
	}
	if err := seedMenuCategories(); err != nil {
		logger.Error("Failed to seed menu categories", err)
		return err
	}
	if err := seedAdminUser(cfg); err != nil {
		logger.Error("Failed to seed admin user", err)
		return err
	}

	logger.Info("Baseline data seeded successfully")
	return nil
}

// seedSingletons ensures the fixed-key rows exist. Singleton updates are
// update-only, so these must be created here exactly once.
func seedSingletons() error {
	var count int64
	if err := DB.Model(&model.ContactInfo{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		info := model.ContactInfo{
			ID:    model.SingletonID,
			Phone: "+91 98765 43210",
			Email: "hello@navjivanrestaurant.com",
			OpeningHours: []model.OpeningHour{
				{Day: "Mon - Fri", Hours: "11:00 - 22:30"},
				{Day: "Sat - Sun", Hours: "10:00 - 23:00"},
			},
		}
		if err := DB.Create(&info).Error; err != nil {
			return err
		}
	}

	if err := DB.Model(&model.AboutInfo{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		about := model.AboutInfo{
			ID:    model.SingletonID,
			Story: "Navjivan has served home-style Indian cooking since 1978.",
			WhyUs: []string{"Fresh ingredients", "Family recipes", "Warm hospitality"},
		}
		if err := DB.Create(&about).Error; err != nil {
			return err
		}
	}

	if err := DB.Model(&model.ChefSpecial{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		special := model.ChefSpecial{ID: model.SingletonID, Name: "Dish of the Day"}
		if err := DB.Create(&special).Error; err != nil {
			return err
		}
	}

	return nil
}

func seedMenuCategories() error {
	var count int64
	if err := DB.Model(&model.MenuCategory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Menu categories already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return nil
	}

	categories := []model.MenuCategory{
		{Name: "Starters", Position: 1},
		{Name: "Main Course", Position: 2},
		{Name: "Breads", Position: 3},
		{Name: "Desserts", Position: 4},
		{Name: "Beverages", Position: 5},
	}
	for i := range categories {
		if err := DB.Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("Menu categories seeded successfully", map[string]interface{}{
		"total_categories": len(categories),
	})
	return nil
}

func seedAdminUser(cfg *config.Config) error {
	var count int64
	if err := DB.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.Admin.Password == "" {
		logger.Warn("ADMIN_PASSWORD not set, skipping admin user seed", map[string]interface{}{
			"email": cfg.Admin.Email,
		})
		return nil
	}

	if err := util.ValidatePassword(cfg.Admin.Password); err != nil {
		return err
	}
	hash, err := util.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}
	admin := model.User{
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	logger.Info("Admin user seeded successfully", map[string]interface{}{
		"email": admin.Email,
	})
	return nil
}
