package models

import "time"

type Event struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description"`
	Venue          string    `json:"venue"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	BannerImageURL string    `json:"banner_image_url"`
	Featured       bool      `gorm:"default:false" json:"featured"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
