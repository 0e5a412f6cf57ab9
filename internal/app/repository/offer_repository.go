package repository

import (
	"github.com/navjivan/navjivan-backend/internal/app/model"

	"gorm.io/gorm"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

func (r *OfferRepository) FindAll() ([]model.OfferItem, error) {
	var offers []model.OfferItem
	if err := r.db.Find(&offers).Error; err != nil {
		return nil, err
	}
	return offers, nil
}

func (r *OfferRepository) Create(offer *model.OfferItem) error {
	return r.db.Create(offer).Error
}

func (r *OfferRepository) Update(offer *model.OfferItem) error {
	return r.db.Save(offer).Error
}

func (r *OfferRepository) Delete(id uint) error {
	return r.db.Delete(&model.OfferItem{}, id).Error
}
