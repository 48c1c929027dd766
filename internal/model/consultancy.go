package model

import (
	"time"
)

// Service type values accepted for ConsultancyService.ServiceType
const (
	ServiceTypeCareer    = "career"
	ServiceTypeBusiness  = "business"
	ServiceTypePersonal  = "personal"
	ServiceTypeEducation = "education"
)

// ConsultancyService represents a consulting offering shown on the
// services page. Deleting a service deletes its features first;
// the cleanup is handler-managed, not a database cascade.
type ConsultancyService struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	ServiceType string    `json:"service_type" gorm:"type:varchar(50);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Icon        string    `json:"icon" gorm:"type:varchar(100)"`
	Order       int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceFeature represents a bullet point under a consultancy service
type ServiceFeature struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	ServiceID   uint      `json:"service_id" gorm:"index;not null"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Icon        string    `json:"icon" gorm:"type:varchar(100)"`
	Order       int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
