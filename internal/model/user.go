package model

import (
	"time"
)

// User represents an admin panel user record. Credentials themselves
// are configured through the environment; this table only keeps
// bookkeeping data such as last login time.
type User struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Username    string    `json:"username" gorm:"type:varchar(100);unique;not null"`
	DisplayName string    `json:"display_name" gorm:"type:varchar(255)"`
	LastLoginAt time.Time `json:"last_login_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
