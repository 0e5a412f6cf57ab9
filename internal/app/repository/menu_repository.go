package repository

import (
	"github.com/navjivan/navjivan-backend/internal/app/model"

	"gorm.io/gorm"
)

type MenuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// FindAllItems returns every menu item. The store sorts against the
// category list, so no order is imposed here.
func (r *MenuRepository) FindAllItems() ([]model.MenuItem, error) {
	var items []model.MenuItem
	if err := r.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) CreateItem(item *model.MenuItem) error {
	return r.db.Create(item).Error
}

func (r *MenuRepository) UpdateItem(item *model.MenuItem) error {
	return r.db.Save(item).Error
}

func (r *MenuRepository) DeleteItem(id uint) error {
	return r.db.Delete(&model.MenuItem{}, id).Error
}

// BulkCreateItems inserts menu items in batches (used by the XLSX importer).
func (r *MenuRepository) BulkCreateItems(items []model.MenuItem, batchSize int) error {
	return r.db.CreateInBatches(items, batchSize).Error
}

// FindAllCategories returns categories in their canonical display order.
func (r *MenuRepository) FindAllCategories() ([]model.MenuCategory, error) {
	var categories []model.MenuCategory
	if err := r.db.Order("position ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *MenuRepository) CreateCategory(category *model.MenuCategory) error {
	return r.db.Create(category).Error
}

// DeleteCategoryByName removes a category. Menu items keep whatever
// category string they carry; there is deliberately no cascade.
func (r *MenuRepository) DeleteCategoryByName(name string) error {
	return r.db.Where("name = ?", name).Delete(&model.MenuCategory{}).Error
}
