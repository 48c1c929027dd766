package model

import (
	"time"
)

// BlogPost represents a blog article. The public API only exposes
// published posts; the admin API sees everything.
type BlogPost struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Content     string    `json:"content" gorm:"type:text"`
	Excerpt     string    `json:"excerpt" gorm:"type:text"`
	Author      string    `json:"author" gorm:"type:varchar(255)"`
	CoverImage  string    `json:"cover_image" gorm:"type:text"`
	IsPublished bool      `json:"is_published" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
