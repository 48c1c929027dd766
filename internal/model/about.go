package model

import (
	"time"
)

// AboutConfig represents the about page content. At most one row is
// active at a time. The four child collections below belong to an
// AboutConfig but are created and deleted individually; deleting the
// parent does not cascade to them.
type AboutConfig struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	Title        string    `json:"title" gorm:"type:varchar(255)"`
	Subtitle     string    `json:"subtitle" gorm:"type:varchar(255)"`
	Bio          string    `json:"bio" gorm:"type:text"`
	ProfileImage string    `json:"profile_image" gorm:"type:text"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// JourneyItem represents one entry of the professional journey
// timeline. The admin form submits "yearRange" and "company"; they
// are stored as period and organization.
type JourneyItem struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	AboutConfigID uint      `json:"about_config_id" gorm:"index;not null"`
	Period        string    `json:"period" gorm:"type:varchar(100)"`
	Organization  string    `json:"organization" gorm:"type:varchar(255)"`
	Role          string    `json:"role" gorm:"type:varchar(255)"`
	Description   string    `json:"description" gorm:"type:text"`
	Order         int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EducationQualification represents one education entry. The admin
// form submits "degree"; it is stored as qualification.
type EducationQualification struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	AboutConfigID uint      `json:"about_config_id" gorm:"index;not null"`
	Qualification string    `json:"qualification" gorm:"type:varchar(255)"`
	Institution   string    `json:"institution" gorm:"type:varchar(255)"`
	Year          string    `json:"year" gorm:"type:varchar(50)"`
	Description   string    `json:"description" gorm:"type:text"`
	Order         int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Achievement represents one achievement entry on the about page
type Achievement struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	AboutConfigID uint      `json:"about_config_id" gorm:"index;not null"`
	Title         string    `json:"title" gorm:"type:varchar(255)"`
	Description   string    `json:"description" gorm:"type:text"`
	Year          string    `json:"year" gorm:"type:varchar(50)"`
	Icon          string    `json:"icon" gorm:"type:varchar(100)"`
	Order         int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SpeakingEngagement represents one speaking engagement entry on the
// about page
type SpeakingEngagement struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	AboutConfigID uint      `json:"about_config_id" gorm:"index;not null"`
	Title         string    `json:"title" gorm:"type:varchar(255)"`
	Event         string    `json:"event" gorm:"type:varchar(255)"`
	Year          string    `json:"year" gorm:"type:varchar(50)"`
	Location      string    `json:"location" gorm:"type:varchar(255)"`
	Description   string    `json:"description" gorm:"type:text"`
	Order         int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive      bool      `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
