package repository

import (
	"github.com/navjivan/navjivan-backend/internal/app/model"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// FindAll returns reservations newest first.
func (r *ReservationRepository) FindAll() ([]model.ReservationItem, error) {
	var reservations []model.ReservationItem
	if err := r.db.Order("created_at DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *ReservationRepository) Create(reservation *model.ReservationItem) error {
	return r.db.Create(reservation).Error
}

func (r *ReservationRepository) Update(reservation *model.ReservationItem) error {
	return r.db.Save(reservation).Error
}

func (r *ReservationRepository) Delete(id uint) error {
	return r.db.Delete(&model.ReservationItem{}, id).Error
}
