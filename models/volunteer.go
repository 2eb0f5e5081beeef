package models

import "gorm.io/gorm"

type Volunteer struct {
	gorm.Model
	FullName     string `gorm:"not null" json:"full_name"`
	Email        string `gorm:"not null" json:"email"`
	PhoneNumber  string `gorm:"not null" json:"phone_number"`
	MinistryID   uint   `gorm:"not null" json:"ministry_id"`
	Availability string `json:"availability"`
}
