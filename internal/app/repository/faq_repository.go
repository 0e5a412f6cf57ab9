package repository

import (
	"github.com/navjivan/navjivan-backend/internal/app/model"

	"gorm.io/gorm"
)

type FAQRepository struct {
	db *gorm.DB
}

func NewFAQRepository(db *gorm.DB) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) FindAll() ([]model.FAQItem, error) {
	var faqs []model.FAQItem
	if err := r.db.Order("id ASC").Find(&faqs).Error; err != nil {
		return nil, err
	}
	return faqs, nil
}

// ReplaceAll swaps the whole FAQ table for the given list. Incoming IDs are
// discarded and the server assigns fresh ones. The operation runs in one
// transaction so a failed insert does not leave the table empty, but it is
// still last-write-wins between two admins editing at the same time.
func (r *FAQRepository) ReplaceAll(faqs []model.FAQItem) ([]model.FAQItem, error) {
	fresh := make([]model.FAQItem, len(faqs))
	for i, f := range faqs {
		fresh[i] = model.FAQItem{Question: f.Question, Answer: f.Answer}
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.FAQItem{}).Error; err != nil {
			return err
		}
		if len(fresh) == 0 {
			return nil
		}
		return tx.Create(&fresh).Error
	})
	if err != nil {
		return nil, err
	}
	return fresh, nil
}
