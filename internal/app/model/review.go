package model

import (
	"time"
)

type ReviewStatus string

const (
	ReviewPending  ReviewStatus = "pending"
	ReviewApproved ReviewStatus = "approved"
)

// ReviewItem is a guest review. New reviews always enter as pending and
// only an admin edit moves them to approved; public pages show approved only.
type ReviewItem struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	Name       string       `gorm:"not null" json:"name"`
	Rating     int          `gorm:"not null" json:"rating"` // 1-5
	Comment    string       `gorm:"type:text" json:"comment"`
	ReviewDate time.Time    `gorm:"index" json:"review_date"`
	Status     ReviewStatus `gorm:"type:varchar(20);default:pending" json:"status"`
	DishName   string       `json:"dish_name,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (ReviewItem) TableName() string {
	return "reviews"
}
