package repository

import (
	"github.com/navjivan/navjivan-backend/internal/app/model"

	"gorm.io/gorm"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) FindAll() ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	if err := r.db.Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GalleryRepository) Create(image *model.GalleryImage) error {
	return r.db.Create(image).Error
}

func (r *GalleryRepository) Delete(id uint) error {
	return r.db.Delete(&model.GalleryImage{}, id).Error
}
