package model

import (
	"time"
)

// ContactMessageItem is write-only: the site inserts it, staff read it from
// their inbox. It is never mirrored into the content store.
type ContactMessageItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessageItem) TableName() string {
	return "contact_messages"
}
