package model

import (
	"time"
)

// Masterclass represents a scheduled masterclass session.
// SeatsAvailable is decremented by one per successful registration.
type Masterclass struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	Title          string    `json:"title" gorm:"type:varchar(255);not null"`
	Description    string    `json:"description" gorm:"type:text"`
	Instructor     string    `json:"instructor" gorm:"type:varchar(255)"`
	Date           time.Time `json:"date"`
	Duration       string    `json:"duration" gorm:"type:varchar(100)"`
	Price          float64   `json:"price"`
	TotalSeats     int       `json:"total_seats"`
	SeatsAvailable int       `json:"seats_available"`
	CoverImage     string    `json:"cover_image" gorm:"type:text"`
	VideoURL       string    `json:"video_url" gorm:"type:text"`
	IsUpcoming     bool      `json:"is_upcoming" gorm:"default:true"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MasterclassRegistration represents an attendee registration.
// The masterclass title is denormalized so exported registration
// lists stay meaningful; deleting a masterclass still removes its
// registrations first (handler-managed cascade).
type MasterclassRegistration struct {
	ID                  uint      `json:"id" gorm:"primarykey"`
	MasterclassID       uint      `json:"masterclass_id" gorm:"index;not null"`
	MasterclassTitle    string    `json:"masterclass_title" gorm:"type:varchar(255)"`
	FullName            string    `json:"full_name" gorm:"type:varchar(255);not null"`
	Email               string    `json:"email" gorm:"type:varchar(255);not null"`
	Phone               string    `json:"phone" gorm:"type:varchar(50)"`
	Occupation          string    `json:"occupation" gorm:"type:varchar(255)"`
	SubscribeNewsletter bool      `json:"subscribe_newsletter" gorm:"default:false"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
