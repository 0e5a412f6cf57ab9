package model

import (
	"time"

	"github.com/lib/pq"
)

// SingletonID is the fixed key of single-row tables (contact info, about
// info, chef special).
const SingletonID uint = 1

type OpeningHour struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type SocialLinks struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// ContactInfo is a singleton row (ID 1), seeded by the migration and only
// ever updated in place.
type ContactInfo struct {
	ID           uint          `gorm:"primarykey" json:"id"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	Whatsapp     string        `json:"whatsapp"`
	Address      string        `json:"address"`
	MapURL       string        `gorm:"type:text" json:"map_url"`
	OpeningHours []OpeningHour `gorm:"serializer:json;type:text" json:"opening_hours"`
	Socials      SocialLinks   `gorm:"serializer:json;type:text" json:"socials"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (ContactInfo) TableName() string {
	return "contact_info"
}

// AboutInfo is a singleton row (ID 1).
type AboutInfo struct {
	ID                 uint           `gorm:"primarykey" json:"id"`
	Story              string         `gorm:"type:text" json:"story"`
	Mission            string         `gorm:"type:text" json:"mission"`
	Vision             string         `gorm:"type:text" json:"vision"`
	WhyUs              pq.StringArray `gorm:"type:text[]" json:"why_us"`
	CulinaryPhilosophy string         `gorm:"type:text" json:"culinary_philosophy"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func (AboutInfo) TableName() string {
	return "about_info"
}
