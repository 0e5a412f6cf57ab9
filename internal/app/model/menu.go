package model

import (
	"time"
)

type MenuItem struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	ImageURL      string    `json:"image_url"`
	Category      string    `gorm:"index" json:"category"`
	IsHighlighted bool      `gorm:"default:false" json:"is_highlighted"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// MenuCategory is an ordered set of category names. Categories are not
// foreign keys: deleting one does not touch menu items that reference it.
type MenuCategory struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	Name     string `gorm:"uniqueIndex;not null" json:"name"`
	Position int    `gorm:"default:0" json:"position"`
}

func (MenuCategory) TableName() string {
	return "menu_categories"
}
