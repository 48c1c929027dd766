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

// CategoryRequest defines the structure for category creation/update requests
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// ListCategories retrieves categories. The public view only returns
// active categories; ?admin=true bypasses the filter.
func ListCategories(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Order("name asc")
	if c.QueryParam("admin") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var categories []model.Category
	result := query.Find(&categories)
	if result.Error != nil {
		log.Error("Failed to retrieve categories", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve categories"})
	}

	return c.JSON(http.StatusOK, categories)
}

// GetCategory retrieves a specific category by ID
func GetCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var category model.Category
	result := database.GetDB().First(&category, "id = ?", id)
	if result.Error != nil {
		log.Warn("Category not found", zap.String("category_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
	}

	return c.JSON(http.StatusOK, category)
}

// CreateCategory adds a new category
func CreateCategory(c echo.Context) error {
	log := logger.FromContext(c)

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Category name is required"})
	}

	// Enforce the unique name constraint up front for a clearer error
	var count int64
	database.GetDB().Model(&model.Category{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		log.Warn("Category with this name already exists", zap.String("name", req.Name))
		return c.JSON(http.StatusConflict, echo.Map{"error": "Category with this name already exists"})
	}

	category := model.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	result := database.GetDB().Create(&category)
	if result.Error != nil {
		log.Error("Failed to create category", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create category"})
	}

	log.Info("Category created", zap.Uint("category_id", category.ID), zap.String("name", category.Name))
	prometheus.RecordContentOperation("category", "create")
	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates an existing category
func UpdateCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("category_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var category model.Category
	result := database.GetDB().First(&category, "id = ?", id)
	if result.Error != nil {
		log.Warn("Category not found", zap.String("category_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
	}

	if req.Name != "" && req.Name != category.Name {
		var count int64
		database.GetDB().Model(&model.Category{}).
			Where("name = ? AND id != ?", req.Name, id).
			Count(&count)
		if count > 0 {
			log.Warn("Category with this name already exists", zap.String("name", req.Name))
			return c.JSON(http.StatusConflict, echo.Map{"error": "Category with this name already exists"})
		}
		category.Name = req.Name
	}
	if req.Description != "" {
		category.Description = req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	result = database.GetDB().Save(&category)
	if result.Error != nil {
		log.Error("Failed to update category", zap.String("category_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update category"})
	}

	log.Info("Category updated", zap.Uint("category_id", category.ID))
	prometheus.RecordContentOperation("category", "update")
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory hard-deletes a category. Publications referencing it
// are not deleted: their category reference is cleared first, so they
// become uncategorized.
func DeleteCategory(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var category model.Category
	result := database.GetDB().First(&category, "id = ?", id)
	if result.Error != nil {
		log.Warn("Category not found", zap.String("category_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Category not found"})
	}

	// Detach publications before deleting the category
	detach := database.GetDB().Model(&model.Publication{}).
		Where("category_id = ?", category.ID).
		Update("category_id", nil)
	if detach.Error != nil {
		log.Error("Failed to detach publications from category",
			zap.Uint("category_id", category.ID),
			zap.Error(detach.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete category"})
	}

	result = database.GetDB().Delete(&category)
	if result.Error != nil {
		log.Error("Failed to delete category", zap.Uint("category_id", category.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete category"})
	}

	log.Info("Category deleted",
		zap.Uint("category_id", category.ID),
		zap.Int64("publications_detached", detach.RowsAffected))
	prometheus.RecordContentOperation("category", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Category deleted successfully"})
}
