package model

import (
	"time"
)

// Publication represents a published book or paper. Publications are
// never hard-deleted: delete sets is_active=false, and any update
// sets it back to true.
type Publication struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"type:varchar(255);not null"`
	Author       string    `json:"author" gorm:"type:varchar(255)"`
	Description  string    `json:"description" gorm:"type:text"`
	Pages        int       `json:"pages"`
	Price        float64   `json:"price"`
	CoverImage   string    `json:"cover_image" gorm:"type:text"`
	PurchaseLink string    `json:"purchase_link" gorm:"type:text"`
	CategoryID   *uint     `json:"category_id" gorm:"index"`
	Category     *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
