package repository

import (
	"github.com/navjivan/navjivan-backend/internal/app/model"

	"gorm.io/gorm"
)

// InfoRepository covers the singleton rows (contact info, about info) and
// the write-only contact message table.
type InfoRepository struct {
	db *gorm.DB
}

func NewInfoRepository(db *gorm.DB) *InfoRepository {
	return &InfoRepository{db: db}
}

func (r *InfoRepository) GetContactInfo() (*model.ContactInfo, error) {
	var info model.ContactInfo
	if err := r.db.First(&info, model.SingletonID).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateContactInfo replaces the singleton in place; it never inserts.
func (r *InfoRepository) UpdateContactInfo(info *model.ContactInfo) error {
	info.ID = model.SingletonID
	return r.db.Model(&model.ContactInfo{}).
		Where("id = ?", model.SingletonID).
		Select("*").Omit("id").
		Updates(info).Error
}

func (r *InfoRepository) GetAboutInfo() (*model.AboutInfo, error) {
	var info model.AboutInfo
	if err := r.db.First(&info, model.SingletonID).Error; err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *InfoRepository) UpdateAboutInfo(info *model.AboutInfo) error {
	info.ID = model.SingletonID
	return r.db.Model(&model.AboutInfo{}).
		Where("id = ?", model.SingletonID).
		Select("*").Omit("id").
		Updates(info).Error
}

func (r *InfoRepository) CreateContactMessage(msg *model.ContactMessageItem) error {
	return r.db.Create(msg).Error
}
