package models

import "time"

type GalleryImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `gorm:"not null" json:"image_url"`
	Caption   string    `json:"caption"`
	EventID   *uint     `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}
