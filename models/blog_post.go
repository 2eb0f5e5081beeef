package models

import "time"

type BlogPost struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Slug          string     `gorm:"unique;not null" json:"slug"`
	Author        string     `json:"author"`
	Body          string     `gorm:"type:text" json:"body"`
	CoverImageURL string     `json:"cover_image_url"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
