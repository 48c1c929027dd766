package model

import (
	"time"
)

// Media type values accepted for GalleryItem.MediaType
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// GalleryItem represents an image or video in the gallery. Video
// items without an explicit thumbnail fall back to the YouTube
// thumbnail derived from the video URL when one can be extracted.
type GalleryItem struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	MediaType   string    `json:"media_type" gorm:"type:varchar(20);not null;default:'image'"`
	ImageURL    string    `json:"image_url" gorm:"type:text"`
	VideoURL    string    `json:"video_url" gorm:"type:text"`
	Thumbnail   string    `json:"thumbnail" gorm:"type:text"`
	Featured    bool      `json:"featured" gorm:"default:false"`
	Order       int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
