package model

import (
	"time"
)

// SiteConfig represents site-wide settings. The first row is the
// canonical one: GET auto-creates a default row when the table is
// empty, PUT returns not-found instead of creating.
type SiteConfig struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	SiteName        string    `json:"site_name" gorm:"type:varchar(255)"`
	Tagline         string    `json:"tagline" gorm:"type:varchar(255)"`
	Email           string    `json:"email" gorm:"type:varchar(255)"`
	Phone           string    `json:"phone" gorm:"type:varchar(50)"`
	Address         string    `json:"address" gorm:"type:text"`
	FooterText      string    `json:"footer_text" gorm:"type:text"`
	MetaDescription string    `json:"meta_description" gorm:"type:text"`
	LogoURL         string    `json:"logo_url" gorm:"type:text"`
	FaviconURL      string    `json:"favicon_url" gorm:"type:text"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HeroConfig represents the home page hero section. At most one row
// is active at a time; activating a row deactivates its siblings.
type HeroConfig struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	HeroTitle       string    `json:"hero_title" gorm:"type:varchar(255)"`
	HeroSubtitle    string    `json:"hero_subtitle" gorm:"type:varchar(255)"`
	HeroDescription string    `json:"hero_description" gorm:"type:text"`
	HeroImage       string    `json:"hero_image" gorm:"type:text"`
	CTAText         string    `json:"cta_text" gorm:"type:varchar(100)"`
	CTALink         string    `json:"cta_link" gorm:"type:text"`
	YearsExperience int       `json:"years_experience"`
	ClientsServed   int       `json:"clients_served"`
	IsActive        bool      `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// SocialMediaLink represents a footer/header social media link
type SocialMediaLink struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Platform  string    `json:"platform" gorm:"type:varchar(100);not null"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	Icon      string    `json:"icon" gorm:"type:varchar(100)"`
	Order     int       `json:"order" gorm:"column:display_order;default:0"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
