package repository

import (
	"github.com/navjivan/navjivan-backend/internal/app/model"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// FindAll returns reviews newest first by review date.
func (r *ReviewRepository) FindAll() ([]model.ReviewItem, error) {
	var reviews []model.ReviewItem
	if err := r.db.Order("review_date DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(review *model.ReviewItem) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) Update(review *model.ReviewItem) error {
	return r.db.Save(review).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.db.Delete(&model.ReviewItem{}, id).Error
}
