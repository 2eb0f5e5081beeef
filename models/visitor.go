package models

import "gorm.io/gorm"

type Visitor struct {
	gorm.Model
	FullName    string `gorm:"not null" json:"full_name"`
	Email       string `gorm:"not null" json:"email"`
	PhoneNumber string `json:"phone_number"`
	HeardFrom   string `json:"heard_from"`
	Message     string `gorm:"type:text" json:"message"`
}
