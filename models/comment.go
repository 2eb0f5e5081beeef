package models

import "gorm.io/gorm"

const (
	CommentStatusPending  = "pending"
	CommentStatusApproved = "approved"
)

type Comment struct {
	gorm.Model
	BlogPostID uint   `gorm:"not null;index" json:"blog_post_id"`
	AuthorName string `gorm:"not null" json:"author_name"`
	Body       string `gorm:"type:text;not null" json:"body"`
	Status     string `gorm:"default:pending" json:"status"` // pending, approved
}
