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

// ServiceRequest defines the structure for consultancy service
// creation/update requests
type ServiceRequest struct {
	Name        string `json:"name"`
	ServiceType string `json:"service_type"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

// FeatureRequest defines the structure for service feature
// creation/update requests
type FeatureRequest struct {
	ServiceID   uint   `json:"service_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Order       *int   `json:"order"`
	IsActive    *bool  `json:"is_active"`
}

var validServiceTypes = map[string]struct{}{
	model.ServiceTypeCareer:    {},
	model.ServiceTypeBusiness:  {},
	model.ServiceTypePersonal:  {},
	model.ServiceTypeEducation: {},
}

// ListServices retrieves consultancy services ordered by their
// display order, then recency. Public view only returns active ones.
func ListServices(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Order("display_order asc, created_at desc")
	if c.QueryParam("admin") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var services []model.ConsultancyService
	result := query.Find(&services)
	if result.Error != nil {
		log.Error("Failed to retrieve services", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve services"})
	}

	return c.JSON(http.StatusOK, services)
}

// CreateService adds a new consultancy service
func CreateService(c echo.Context) error {
	log := logger.FromContext(c)

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Service name is required"})
	}
	if _, ok := validServiceTypes[req.ServiceType]; !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid service type, expected one of career, business, personal, education"})
	}

	service := model.ConsultancyService{
		Name:        req.Name,
		ServiceType: req.ServiceType,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if req.Order != nil {
		service.Order = *req.Order
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	result := database.GetDB().Create(&service)
	if result.Error != nil {
		log.Error("Failed to create service", zap.String("name", req.Name), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create service"})
	}

	log.Info("Service created", zap.Uint("service_id", service.ID), zap.String("name", service.Name))
	prometheus.RecordContentOperation("service", "create")
	return c.JSON(http.StatusCreated, service)
}

// UpdateService updates an existing consultancy service
func UpdateService(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("service_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var service model.ConsultancyService
	result := database.GetDB().First(&service, "id = ?", id)
	if result.Error != nil {
		log.Warn("Service not found", zap.String("service_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Service not found"})
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.ServiceType != "" {
		if _, ok := validServiceTypes[req.ServiceType]; !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid service type, expected one of career, business, personal, education"})
		}
		service.ServiceType = req.ServiceType
	}
	if req.Description != "" {
		service.Description = req.Description
	}
	if req.Icon != "" {
		service.Icon = req.Icon
	}
	if req.Order != nil {
		service.Order = *req.Order
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	result = database.GetDB().Save(&service)
	if result.Error != nil {
		log.Error("Failed to update service", zap.String("service_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update service"})
	}

	log.Info("Service updated", zap.Uint("service_id", service.ID))
	prometheus.RecordContentOperation("service", "update")
	return c.JSON(http.StatusOK, service)
}

// DeleteService hard-deletes a consultancy service. Its features are
// deleted first; the cleanup is managed here, not by the database.
func DeleteService(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var service model.ConsultancyService
	result := database.GetDB().First(&service, "id = ?", id)
	if result.Error != nil {
		log.Warn("Service not found", zap.String("service_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Service not found"})
	}

	features := database.GetDB().Where("service_id = ?", service.ID).Delete(&model.ServiceFeature{})
	if features.Error != nil {
		log.Error("Failed to delete service features", zap.Uint("service_id", service.ID), zap.Error(features.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete service"})
	}

	result = database.GetDB().Delete(&service)
	if result.Error != nil {
		log.Error("Failed to delete service", zap.Uint("service_id", service.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete service"})
	}

	log.Info("Service deleted",
		zap.Uint("service_id", service.ID),
		zap.Int64("features_deleted", features.RowsAffected))
	prometheus.RecordContentOperation("service", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Service deleted successfully"})
}

// ListFeatures retrieves service features ordered by display order,
// then recency. ?service= filters by owning service.
func ListFeatures(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Order("display_order asc, created_at desc")
	if c.QueryParam("admin") != "true" {
		query = query.Where("is_active = ?", true)
	}
	if serviceID := c.QueryParam("service"); serviceID != "" {
		query = query.Where("service_id = ?", serviceID)
	}

	var features []model.ServiceFeature
	result := query.Find(&features)
	if result.Error != nil {
		log.Error("Failed to retrieve features", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve features"})
	}

	return c.JSON(http.StatusOK, features)
}

// GetFeature retrieves a single service feature by ID
func GetFeature(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var feature model.ServiceFeature
	result := database.GetDB().First(&feature, "id = ?", id)
	if result.Error != nil {
		log.Warn("Feature not found", zap.String("feature_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Feature not found"})
	}

	return c.JSON(http.StatusOK, feature)
}

// CreateFeature adds a new feature under an existing service
func CreateFeature(c echo.Context) error {
	log := logger.FromContext(c)

	var req FeatureRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Feature title is required"})
	}

	var service model.ConsultancyService
	if err := database.GetDB().First(&service, "id = ?", req.ServiceID).Error; err != nil {
		log.Warn("Owning service not found", zap.Uint("service_id", req.ServiceID), zap.Error(err))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Service not found"})
	}

	feature := model.ServiceFeature{
		ServiceID:   req.ServiceID,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		IsActive:    true,
	}
	if req.Order != nil {
		feature.Order = *req.Order
	}
	if req.IsActive != nil {
		feature.IsActive = *req.IsActive
	}

	result := database.GetDB().Create(&feature)
	if result.Error != nil {
		log.Error("Failed to create feature", zap.String("title", req.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create feature"})
	}

	log.Info("Feature created", zap.Uint("feature_id", feature.ID), zap.Uint("service_id", feature.ServiceID))
	prometheus.RecordContentOperation("feature", "create")
	return c.JSON(http.StatusCreated, feature)
}

// UpdateFeature updates an existing service feature
func UpdateFeature(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req FeatureRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("feature_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var feature model.ServiceFeature
	result := database.GetDB().First(&feature, "id = ?", id)
	if result.Error != nil {
		log.Warn("Feature not found", zap.String("feature_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Feature not found"})
	}

	if req.Title != "" {
		feature.Title = req.Title
	}
	if req.Description != "" {
		feature.Description = req.Description
	}
	if req.Icon != "" {
		feature.Icon = req.Icon
	}
	if req.Order != nil {
		feature.Order = *req.Order
	}
	if req.IsActive != nil {
		feature.IsActive = *req.IsActive
	}

	result = database.GetDB().Save(&feature)
	if result.Error != nil {
		log.Error("Failed to update feature", zap.String("feature_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update feature"})
	}

	log.Info("Feature updated", zap.Uint("feature_id", feature.ID))
	prometheus.RecordContentOperation("feature", "update")
	return c.JSON(http.StatusOK, feature)
}

// DeleteFeature hard-deletes a single service feature
func DeleteFeature(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var feature model.ServiceFeature
	result := database.GetDB().First(&feature, "id = ?", id)
	if result.Error != nil {
		log.Warn("Feature not found", zap.String("feature_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Feature not found"})
	}

	result = database.GetDB().Delete(&feature)
	if result.Error != nil {
		log.Error("Failed to delete feature", zap.Uint("feature_id", feature.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete feature"})
	}

	log.Info("Feature deleted", zap.Uint("feature_id", feature.ID))
	prometheus.RecordContentOperation("feature", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Feature deleted successfully"})
}
