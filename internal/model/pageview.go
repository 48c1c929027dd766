package model

import (
	"time"
)

// PageView represents a single page view event. The table is an
// append-only fact log: the application never updates or deletes rows.
type PageView struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Path        string    `json:"path" gorm:"type:text;not null;index"`
	Title       string    `json:"title" gorm:"type:varchar(255)"`
	Referrer    string    `json:"referrer" gorm:"type:text"`
	UserAgent   string    `json:"user_agent" gorm:"type:text"`
	IP          string    `json:"ip" gorm:"type:varchar(64)"`
	ContentType string    `json:"content_type" gorm:"type:varchar(50);index"`
	ContentID   *uint     `json:"content_id"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}
