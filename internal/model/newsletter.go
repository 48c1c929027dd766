package model

import (
	"time"
)

// NewsletterSubscription represents a newsletter signup. Emails are
// unique: re-subscribing an inactive email reactivates the existing
// row instead of creating a duplicate.
type NewsletterSubscription struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Email     string    `json:"email" gorm:"type:varchar(255);unique;not null"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
