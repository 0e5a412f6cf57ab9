package model

import (
	"time"
)

type GalleryCategory string

const (
	GalleryFood     GalleryCategory = "Food"
	GalleryAmbiance GalleryCategory = "Ambiance"
)

type GalleryImage struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	Src       string          `gorm:"not null" json:"src"`
	Alt       string          `json:"alt"`
	Category  GalleryCategory `gorm:"type:varchar(20)" json:"category"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
