package model

import (
	"time"
)

type Chef struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Title     string    `json:"title"`
	Bio       string    `gorm:"type:text" json:"bio"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Chef) TableName() string {
	return "chefs"
}

// ChefSpecial is a singleton row (ID 1), created by the migration seed and
// only ever updated in place.
type ChefSpecial struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (ChefSpecial) TableName() string {
	return "chef_special"
}
