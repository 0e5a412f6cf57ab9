package model

import (
	"time"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "Pending"
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationCancelled ReservationStatus = "Cancelled"
)

// ReservationItem starts as Pending and only moves to Confirmed or
// Cancelled through an explicit admin update.
type ReservationItem struct {
	ID        uint              `gorm:"primarykey" json:"id"`
	Name      string            `gorm:"not null" json:"name"`
	Phone     string            `gorm:"not null" json:"phone"`
	Date      string            `gorm:"not null" json:"date"` // YYYY-MM-DD
	Time      string            `gorm:"not null" json:"time"` // HH:MM
	Guests    int               `gorm:"not null" json:"guests"`
	Status    ReservationStatus `gorm:"type:varchar(20);default:Pending" json:"status"`
	CreatedAt time.Time         `gorm:"index" json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (ReservationItem) TableName() string {
	return "reservations"
}
