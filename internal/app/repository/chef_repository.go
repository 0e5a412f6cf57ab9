package repository

import (
	"github.com/navjivan/navjivan-backend/internal/app/model"

	"gorm.io/gorm"
)

type ChefRepository struct {
	db *gorm.DB
}

func NewChefRepository(db *gorm.DB) *ChefRepository {
	return &ChefRepository{db: db}
}

func (r *ChefRepository) FindAll() ([]model.Chef, error) {
	var chefs []model.Chef
	if err := r.db.Find(&chefs).Error; err != nil {
		return nil, err
	}
	return chefs, nil
}

func (r *ChefRepository) Create(chef *model.Chef) error {
	return r.db.Create(chef).Error
}

func (r *ChefRepository) Update(chef *model.Chef) error {
	return r.db.Save(chef).Error
}

func (r *ChefRepository) Delete(id uint) error {
	return r.db.Delete(&model.Chef{}, id).Error
}

// GetSpecial returns the chef special singleton. It errors if the seed row
// is missing so a broken deployment surfaces instead of inventing a row.
func (r *ChefRepository) GetSpecial() (*model.ChefSpecial, error) {
	var special model.ChefSpecial
	if err := r.db.First(&special, model.SingletonID).Error; err != nil {
		return nil, err
	}
	return &special, nil
}

// UpdateSpecial replaces the singleton in place; it never inserts.
func (r *ChefRepository) UpdateSpecial(special *model.ChefSpecial) error {
	special.ID = model.SingletonID
	return r.db.Model(&model.ChefSpecial{}).
		Where("id = ?", model.SingletonID).
		Select("*").Omit("id").
		Updates(special).Error
}
