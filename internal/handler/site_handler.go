package handler

import (
	"errors"
	"net/http"

	"consulting-site/internal/model"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SiteConfigRequest defines the structure for site config updates.
// Pointer fields distinguish "not sent" from empty so partial
// payloads merge over the stored record.
type SiteConfigRequest struct {
	SiteName        *string `json:"site_name"`
	Tagline         *string `json:"tagline"`
	Email           *string `json:"email"`
	Phone           *string `json:"phone"`
	Address         *string `json:"address"`
	FooterText      *string `json:"footer_text"`
	MetaDescription *string `json:"meta_description"`
	LogoURL         *string `json:"logo_url"`
	FaviconURL      *string `json:"favicon_url"`
}

// HeroConfigRequest defines the structure for hero config
// creation/update requests, with the same merge semantics
type HeroConfigRequest struct {
	HeroTitle       *string `json:"hero_title"`
	HeroSubtitle    *string `json:"hero_subtitle"`
	HeroDescription *string `json:"hero_description"`
	HeroImage       *string `json:"hero_image"`
	CTAText         *string `json:"cta_text"`
	CTALink         *string `json:"cta_link"`
	YearsExperience *int    `json:"years_experience"`
	ClientsServed   *int    `json:"clients_served"`
}

// SocialMediaLinkRequest defines the structure for social media link
// creation/update requests
type SocialMediaLinkRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Order    *int   `json:"order"`
	IsActive *bool  `json:"is_active"`
}

// GetSiteConfig returns the canonical (first) site config row,
// creating a default one when the table is empty
func GetSiteConfig(c echo.Context) error {
	log := logger.FromContext(c)

	var config model.SiteConfig
	err := database.GetDB().Order("id asc").First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		config = model.SiteConfig{SiteName: "Consulting Site"}
		if err := database.GetDB().Create(&config).Error; err != nil {
			log.Error("Failed to create default site config", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve site config"})
		}
		log.Info("Default site config created", zap.Uint("config_id", config.ID))
	} else if err != nil {
		log.Error("Failed to retrieve site config", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve site config"})
	}

	return c.JSON(http.StatusOK, config)
}

// UpdateSiteConfig merges the provided fields into the canonical site
// config row. Unlike GET, PUT does not auto-create: updating a
// missing config is a not-found error.
func UpdateSiteConfig(c echo.Context) error {
	log := logger.FromContext(c)

	var req SiteConfigRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var config model.SiteConfig
	if err := database.GetDB().Order("id asc").First(&config).Error; err != nil {
		log.Warn("Site config not found", zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Site config not found"})
	}

	if req.SiteName != nil {
		config.SiteName = *req.SiteName
	}
	if req.Tagline != nil {
		config.Tagline = *req.Tagline
	}
	if req.Email != nil {
		config.Email = *req.Email
	}
	if req.Phone != nil {
		config.Phone = *req.Phone
	}
	if req.Address != nil {
		config.Address = *req.Address
	}
	if req.FooterText != nil {
		config.FooterText = *req.FooterText
	}
	if req.MetaDescription != nil {
		config.MetaDescription = *req.MetaDescription
	}
	if req.LogoURL != nil {
		config.LogoURL = *req.LogoURL
	}
	if req.FaviconURL != nil {
		config.FaviconURL = *req.FaviconURL
	}

	if err := database.GetDB().Save(&config).Error; err != nil {
		log.Error("Failed to update site config", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update site config"})
	}

	log.Info("Site config updated", zap.Uint("config_id", config.ID))
	prometheus.RecordContentOperation("site_config", "update")
	return c.JSON(http.StatusOK, config)
}

// GetHeroConfig returns the active hero config, creating a default
// active row when none exists
func GetHeroConfig(c echo.Context) error {
	log := logger.FromContext(c)

	var hero model.HeroConfig
	err := database.GetDB().Where("is_active = ?", true).Order("id asc").First(&hero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hero = model.HeroConfig{IsActive: true}
		if err := database.GetDB().Create(&hero).Error; err != nil {
			log.Error("Failed to create default hero config", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve hero config"})
		}
		log.Info("Default hero config created", zap.Uint("hero_id", hero.ID))
	} else if err != nil {
		log.Error("Failed to retrieve hero config", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve hero config"})
	}

	return c.JSON(http.StatusOK, hero)
}

// UpdateHeroConfig merges the provided fields into the active hero
// config row. Fields not present in the payload keep their stored
// values.
func UpdateHeroConfig(c echo.Context) error {
	log := logger.FromContext(c)

	var req HeroConfigRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var hero model.HeroConfig
	if err := database.GetDB().Where("is_active = ?", true).Order("id asc").First(&hero).Error; err != nil {
		log.Warn("Active hero config not found", zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Hero config not found"})
	}

	if req.HeroTitle != nil {
		hero.HeroTitle = *req.HeroTitle
	}
	if req.HeroSubtitle != nil {
		hero.HeroSubtitle = *req.HeroSubtitle
	}
	if req.HeroDescription != nil {
		hero.HeroDescription = *req.HeroDescription
	}
	if req.HeroImage != nil {
		hero.HeroImage = *req.HeroImage
	}
	if req.CTAText != nil {
		hero.CTAText = *req.CTAText
	}
	if req.CTALink != nil {
		hero.CTALink = *req.CTALink
	}
	if req.YearsExperience != nil {
		hero.YearsExperience = *req.YearsExperience
	}
	if req.ClientsServed != nil {
		hero.ClientsServed = *req.ClientsServed
	}

	if err := database.GetDB().Save(&hero).Error; err != nil {
		log.Error("Failed to update hero config", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update hero config"})
	}

	log.Info("Hero config updated", zap.Uint("hero_id", hero.ID))
	prometheus.RecordContentOperation("hero_config", "update")
	return c.JSON(http.StatusOK, hero)
}

// ActivateHeroConfig makes the given hero config the single active
// one. Sibling rows are deactivated in the same transaction.
func ActivateHeroConfig(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var hero model.HeroConfig
	if err := database.GetDB().First(&hero, "id = ?", id).Error; err != nil {
		log.Warn("Hero config not found", zap.String("hero_id", id), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Hero config not found"})
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.HeroConfig{}).
			Where("id != ?", hero.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&hero).Update("is_active", true).Error
	})
	if err != nil {
		log.Error("Failed to activate hero config", zap.Uint("hero_id", hero.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to activate hero config"})
	}

	hero.IsActive = true
	log.Info("Hero config activated", zap.Uint("hero_id", hero.ID))
	return c.JSON(http.StatusOK, hero)
}

// ListSocialMediaLinks retrieves social media links ordered by
// display order. Public view only returns active links.
func ListSocialMediaLinks(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Order("display_order asc, created_at desc")
	if c.QueryParam("admin") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var links []model.SocialMediaLink
	result := query.Find(&links)
	if result.Error != nil {
		log.Error("Failed to retrieve social media links", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve social media links"})
	}

	return c.JSON(http.StatusOK, links)
}

// CreateSocialMediaLink adds a new social media link
func CreateSocialMediaLink(c echo.Context) error {
	log := logger.FromContext(c)

	var req SocialMediaLinkRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Platform == "" || req.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Platform and URL are required"})
	}

	link := model.SocialMediaLink{
		Platform: req.Platform,
		URL:      req.URL,
		Icon:     req.Icon,
		IsActive: true,
	}
	if req.Order != nil {
		link.Order = *req.Order
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if err := database.GetDB().Create(&link).Error; err != nil {
		log.Error("Failed to create social media link", zap.String("platform", req.Platform), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create social media link"})
	}

	log.Info("Social media link created", zap.Uint("link_id", link.ID), zap.String("platform", link.Platform))
	prometheus.RecordContentOperation("social_media_link", "create")
	return c.JSON(http.StatusCreated, link)
}

// UpdateSocialMediaLink updates an existing social media link
func UpdateSocialMediaLink(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req SocialMediaLinkRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("link_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var link model.SocialMediaLink
	if err := database.GetDB().First(&link, "id = ?", id).Error; err != nil {
		log.Warn("Social media link not found", zap.String("link_id", id), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Social media link not found"})
	}

	if req.Platform != "" {
		link.Platform = req.Platform
	}
	if req.URL != "" {
		link.URL = req.URL
	}
	if req.Icon != "" {
		link.Icon = req.Icon
	}
	if req.Order != nil {
		link.Order = *req.Order
	}
	if req.IsActive != nil {
		link.IsActive = *req.IsActive
	}

	if err := database.GetDB().Save(&link).Error; err != nil {
		log.Error("Failed to update social media link", zap.String("link_id", id), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update social media link"})
	}

	log.Info("Social media link updated", zap.Uint("link_id", link.ID))
	prometheus.RecordContentOperation("social_media_link", "update")
	return c.JSON(http.StatusOK, link)
}

// DeleteSocialMediaLink hard-deletes a social media link
func DeleteSocialMediaLink(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var link model.SocialMediaLink
	if err := database.GetDB().First(&link, "id = ?", id).Error; err != nil {
		log.Warn("Social media link not found", zap.String("link_id", id), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Social media link not found"})
	}

	if err := database.GetDB().Delete(&link).Error; err != nil {
		log.Error("Failed to delete social media link", zap.Uint("link_id", link.ID), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete social media link"})
	}

	log.Info("Social media link deleted", zap.Uint("link_id", link.ID))
	prometheus.RecordContentOperation("social_media_link", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Social media link deleted successfully"})
}
