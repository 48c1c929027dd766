package handler

import (
	"net/http"

	"consulting-site/internal/model"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PublicationRequest defines the structure for publication
// creation/update requests. Pointer fields distinguish "not sent"
// from zero values so updates merge over the stored record.
type PublicationRequest struct {
	Title        *string  `json:"title"`
	Author       *string  `json:"author"`
	Description  *string  `json:"description"`
	Pages        *int     `json:"pages"`
	Price        *float64 `json:"price"`
	CoverImage   *string  `json:"cover_image"`
	PurchaseLink *string  `json:"purchase_link"`
	CategoryID   *uint    `json:"category_id"`
}

// ListPublications retrieves publications, newest first. The public
// view only returns active records; ?admin=true bypasses the filter.
// ?category= filters by category ID.
func ListPublications(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Preload("Category").Order("created_at desc")
	if c.QueryParam("admin") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if categoryID := c.QueryParam("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}

	var publications []model.Publication
	result := query.Find(&publications)
	if result.Error != nil {
		log.Error("Failed to retrieve publications", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve publications"})
	}

	return c.JSON(http.StatusOK, publications)
}

// GetPublication retrieves a single publication by ID. Soft-deleted
// records are returned too: the admin panel must always see them.
func GetPublication(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var publication model.Publication
	result := database.GetDB().Preload("Category").First(&publication, "id = ?", id)
	if result.Error != nil {
		log.Warn("Publication not found", zap.String("publication_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Publication not found"})
	}

	return c.JSON(http.StatusOK, publication)
}

// CreatePublication adds a new publication
func CreatePublication(c echo.Context) error {
	log := logger.FromContext(c)

	var req PublicationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Title == nil || *req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Publication title is required"})
	}

	publication := model.Publication{
		Title:      *req.Title,
		CategoryID: req.CategoryID,
		IsActive:   true,
	}
	applyPublicationFields(&publication, &req)

	result := database.GetDB().Create(&publication)
	if result.Error != nil {
		log.Error("Failed to create publication", zap.String("title", publication.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create publication"})
	}

	log.Info("Publication created", zap.Uint("publication_id", publication.ID), zap.String("title", publication.Title))
	prometheus.RecordContentOperation("publication", "create")
	return c.JSON(http.StatusCreated, publication)
}

// UpdatePublication updates an existing publication. Any update sets
// is_active back to true, resurrecting soft-deleted records.
func UpdatePublication(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req PublicationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("publication_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var publication model.Publication
	result := database.GetDB().First(&publication, "id = ?", id)
	if result.Error != nil {
		log.Warn("Publication not found", zap.String("publication_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Publication not found"})
	}

	if req.Title != nil {
		publication.Title = *req.Title
	}
	if req.CategoryID != nil {
		publication.CategoryID = req.CategoryID
	}
	applyPublicationFields(&publication, &req)

	// Updates always reactivate the record
	publication.IsActive = true

	result = database.GetDB().Save(&publication)
	if result.Error != nil {
		log.Error("Failed to update publication", zap.String("publication_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update publication"})
	}

	log.Info("Publication updated", zap.Uint("publication_id", publication.ID))
	prometheus.RecordContentOperation("publication", "update")
	return c.JSON(http.StatusOK, publication)
}

// DeletePublication soft-deletes a publication by setting
// is_active=false. The row is never removed.
func DeletePublication(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var publication model.Publication
	result := database.GetDB().First(&publication, "id = ?", id)
	if result.Error != nil {
		log.Warn("Publication not found", zap.String("publication_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Publication not found"})
	}

	result = database.GetDB().Model(&publication).Update("is_active", false)
	if result.Error != nil {
		log.Error("Failed to delete publication", zap.Uint("publication_id", publication.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete publication"})
	}

	log.Info("Publication deactivated", zap.Uint("publication_id", publication.ID))
	prometheus.RecordContentOperation("publication", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Publication deleted successfully"})
}

// applyPublicationFields copies the optional request fields that need
// no special handling onto the model
func applyPublicationFields(p *model.Publication, req *PublicationRequest) {
	if req.Author != nil {
		p.Author = *req.Author
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Pages != nil {
		p.Pages = *req.Pages
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.CoverImage != nil {
		p.CoverImage = *req.CoverImage
	}
	if req.PurchaseLink != nil {
		p.PurchaseLink = *req.PurchaseLink
	}
}
