package models

import "gorm.io/gorm"

const (
	PrayerStatusPending   = "pending"
	PrayerStatusPrayedFor = "prayed_for"
	PrayerStatusArchived  = "archived"
)

type PrayerRequest struct {
	gorm.Model
	TrackingCode string `gorm:"unique;not null" json:"tracking_code"`
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	Request      string `gorm:"type:text;not null" json:"request"`
	Public       bool   `gorm:"default:false" json:"public"`
	Status       string `gorm:"default:pending" json:"status"` // pending, prayed_for, archived
}
