package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FullName     string     `gorm:"not null" json:"full_name"`
	Email        string     `gorm:"unique;not null" json:"email"`
	PhoneNumber  string     `json:"phone_number"`
	Password     string     `gorm:"not null" json:"-"`
	Role         string     `gorm:"default:admin" json:"role"`
	PushToken    string     `gorm:"column:push_token" json:"push_token"`
	RefreshToken string     `gorm:"column:refresh_token" json:"-"`
	LastLogoutAt *time.Time `gorm:"column:last_logout_at" json:"-"`
}
