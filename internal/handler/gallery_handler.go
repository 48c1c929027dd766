package handler

import (
	"net/http"

	"consulting-site/internal/model"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"
	"consulting-site/pkg/youtube"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// GalleryItemRequest defines the structure for gallery item
// creation/update requests
type GalleryItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	MediaType   string `json:"media_type"`
	ImageURL    string `json:"image_url"`
	VideoURL    string `json:"video_url"`
	Thumbnail   string `json:"thumbnail"`
	Featured    *bool  `json:"featured"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

// ListGalleryItems retrieves gallery items ordered by display order,
// then recency. ?featured=true restricts to featured items, ?id=
// fetches a single item instead.
func ListGalleryItems(c echo.Context) error {
	log := logger.FromContext(c)
	admin := c.QueryParam("admin") == "true"

	if id := c.QueryParam("id"); id != "" {
		query := database.GetDB()
		if !admin {
			query = query.Where("is_active = ?", true)
		}

		var item model.GalleryItem
		if err := query.First(&item, "id = ?", id).Error; err != nil {
			log.Warn("Gallery item not found", zap.String("item_id", id), zap.Error(err))
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Gallery item not found"})
		}
		return c.JSON(http.StatusOK, item)
	}

	query := database.GetDB().Order("display_order asc, created_at desc")
	if !admin {
		query = query.Where("is_active = ?", true)
	}
	if c.QueryParam("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	var items []model.GalleryItem
	result := query.Find(&items)
	if result.Error != nil {
		log.Error("Failed to retrieve gallery items", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve gallery items"})
	}

	return c.JSON(http.StatusOK, items)
}

// CreateGalleryItem adds a new gallery item. Video items without an
// explicit thumbnail get the YouTube thumbnail derived from the video
// URL when one can be extracted.
func CreateGalleryItem(c echo.Context) error {
	log := logger.FromContext(c)

	var req GalleryItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Gallery item title is required"})
	}
	mediaType := req.MediaType
	if mediaType == "" {
		mediaType = model.MediaTypeImage
	}
	if mediaType != model.MediaTypeImage && mediaType != model.MediaTypeVideo {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid media type, expected image or video"})
	}
	if mediaType == model.MediaTypeVideo && req.VideoURL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Video URL is required for video items"})
	}

	item := model.GalleryItem{
		Title:       req.Title,
		Description: req.Description,
		MediaType:   mediaType,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
		IsActive:    true,
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	applyVideoThumbnailFallback(&item)

	result := database.GetDB().Create(&item)
	if result.Error != nil {
		log.Error("Failed to create gallery item", zap.String("title", req.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create gallery item"})
	}

	log.Info("Gallery item created",
		zap.Uint("item_id", item.ID),
		zap.String("media_type", item.MediaType))
	prometheus.RecordContentOperation("gallery_item", "create")
	return c.JSON(http.StatusCreated, item)
}

// UpdateGalleryItem updates an existing gallery item
func UpdateGalleryItem(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req GalleryItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("item_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var item model.GalleryItem
	result := database.GetDB().First(&item, "id = ?", id)
	if result.Error != nil {
		log.Warn("Gallery item not found", zap.String("item_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Gallery item not found"})
	}

	if req.Title != "" {
		item.Title = req.Title
	}
	if req.Description != "" {
		item.Description = req.Description
	}
	if req.MediaType != "" {
		if req.MediaType != model.MediaTypeImage && req.MediaType != model.MediaTypeVideo {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid media type, expected image or video"})
		}
		item.MediaType = req.MediaType
	}
	if req.ImageURL != "" {
		item.ImageURL = req.ImageURL
	}
	if req.VideoURL != "" {
		item.VideoURL = req.VideoURL
		// The thumbnail follows the video unless explicitly set below
		item.Thumbnail = ""
	}
	if req.Thumbnail != "" {
		item.Thumbnail = req.Thumbnail
	}
	if req.Featured != nil {
		item.Featured = *req.Featured
	}
	if req.Order != nil {
		item.Order = *req.Order
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	applyVideoThumbnailFallback(&item)

	result = database.GetDB().Save(&item)
	if result.Error != nil {
		log.Error("Failed to update gallery item", zap.String("item_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update gallery item"})
	}

	log.Info("Gallery item updated", zap.Uint("item_id", item.ID))
	prometheus.RecordContentOperation("gallery_item", "update")
	return c.JSON(http.StatusOK, item)
}

// DeleteGalleryItem hard-deletes a gallery item
func DeleteGalleryItem(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var item model.GalleryItem
	result := database.GetDB().First(&item, "id = ?", id)
	if result.Error != nil {
		log.Warn("Gallery item not found", zap.String("item_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Gallery item not found"})
	}

	result = database.GetDB().Delete(&item)
	if result.Error != nil {
		log.Error("Failed to delete gallery item", zap.Uint("item_id", item.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete gallery item"})
	}

	log.Info("Gallery item deleted", zap.Uint("item_id", item.ID))
	prometheus.RecordContentOperation("gallery_item", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Gallery item deleted successfully"})
}

// applyVideoThumbnailFallback fills in the YouTube thumbnail for
// video items that have no thumbnail of their own
func applyVideoThumbnailFallback(item *model.GalleryItem) {
	if item.MediaType != model.MediaTypeVideo || item.Thumbnail != "" {
		return
	}
	if thumb, ok := youtube.ThumbnailURL(item.VideoURL); ok {
		item.Thumbnail = thumb
	}
}
