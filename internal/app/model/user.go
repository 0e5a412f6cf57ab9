package model

import (
	"time"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
)

// User is an admin console account. There is no public registration; the
// first account is seeded from the environment during migration.
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Name         string    `json:"name"`
	Role         UserRole  `gorm:"type:varchar(20);default:admin" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
