package handler

import (
	"net/http"
	"time"

	"consulting-site/internal/model"
	"consulting-site/pkg/config"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var guardSeats bool

// InitMasterclassHandler initializes the masterclass handler with configuration
func InitMasterclassHandler(cfg *config.Config) {
	guardSeats = cfg.Registration.GuardSeats
}

// MasterclassRequest defines the structure for masterclass
// creation/update requests
type MasterclassRequest struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Instructor     string     `json:"instructor"`
	Date           *time.Time `json:"date"`
	Duration       string     `json:"duration"`
	Price          *float64   `json:"price"`
	TotalSeats     *int       `json:"total_seats"`
	SeatsAvailable *int       `json:"seats_available"`
	CoverImage     string     `json:"cover_image"`
	VideoURL       string     `json:"video_url"`
	IsUpcoming     *bool      `json:"is_upcoming"`
	IsActive       *bool      `json:"is_active"`
}

// RegistrationRequest defines the structure for masterclass
// registration requests
type RegistrationRequest struct {
	MasterclassID       uint   `json:"masterclass_id"`
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Occupation          string `json:"occupation"`
	SubscribeNewsletter bool   `json:"subscribe_newsletter"`
}

// ListMasterclasses retrieves masterclasses with the soonest upcoming
// session first. The public view only returns active ones.
func ListMasterclasses(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Order("is_upcoming desc, date asc")
	if c.QueryParam("admin") != "true" {
		query = query.Where("is_active = ?", true)
	}

	var masterclasses []model.Masterclass
	result := query.Find(&masterclasses)
	if result.Error != nil {
		log.Error("Failed to retrieve masterclasses", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve masterclasses"})
	}

	return c.JSON(http.StatusOK, masterclasses)
}

// GetMasterclass retrieves a single masterclass by ID
func GetMasterclass(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var masterclass model.Masterclass
	result := database.GetDB().First(&masterclass, "id = ?", id)
	if result.Error != nil {
		log.Warn("Masterclass not found", zap.String("masterclass_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Masterclass not found"})
	}

	return c.JSON(http.StatusOK, masterclass)
}

// CreateMasterclass adds a new masterclass. When seats_available is
// not provided it defaults to total_seats.
func CreateMasterclass(c echo.Context) error {
	log := logger.FromContext(c)

	var req MasterclassRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Masterclass title is required"})
	}

	masterclass := model.Masterclass{
		Title:       req.Title,
		Description: req.Description,
		Instructor:  req.Instructor,
		Duration:    req.Duration,
		CoverImage:  req.CoverImage,
		VideoURL:    req.VideoURL,
		IsUpcoming:  true,
		IsActive:    true,
	}
	if req.Date != nil {
		masterclass.Date = *req.Date
	}
	if req.Price != nil {
		masterclass.Price = *req.Price
	}
	if req.TotalSeats != nil {
		masterclass.TotalSeats = *req.TotalSeats
	}
	if req.SeatsAvailable != nil {
		masterclass.SeatsAvailable = *req.SeatsAvailable
	} else {
		masterclass.SeatsAvailable = masterclass.TotalSeats
	}
	if req.IsUpcoming != nil {
		masterclass.IsUpcoming = *req.IsUpcoming
	}
	if req.IsActive != nil {
		masterclass.IsActive = *req.IsActive
	}

	result := database.GetDB().Create(&masterclass)
	if result.Error != nil {
		log.Error("Failed to create masterclass", zap.String("title", req.Title), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create masterclass"})
	}

	log.Info("Masterclass created",
		zap.Uint("masterclass_id", masterclass.ID),
		zap.String("title", masterclass.Title),
		zap.Int("seats_available", masterclass.SeatsAvailable))
	prometheus.RecordContentOperation("masterclass", "create")
	return c.JSON(http.StatusCreated, masterclass)
}

// UpdateMasterclass updates an existing masterclass
func UpdateMasterclass(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var req MasterclassRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.String("masterclass_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	var masterclass model.Masterclass
	result := database.GetDB().First(&masterclass, "id = ?", id)
	if result.Error != nil {
		log.Warn("Masterclass not found", zap.String("masterclass_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Masterclass not found"})
	}

	if req.Title != "" {
		masterclass.Title = req.Title
	}
	if req.Description != "" {
		masterclass.Description = req.Description
	}
	if req.Instructor != "" {
		masterclass.Instructor = req.Instructor
	}
	if req.Date != nil {
		masterclass.Date = *req.Date
	}
	if req.Duration != "" {
		masterclass.Duration = req.Duration
	}
	if req.Price != nil {
		masterclass.Price = *req.Price
	}
	if req.TotalSeats != nil {
		masterclass.TotalSeats = *req.TotalSeats
	}
	if req.SeatsAvailable != nil {
		masterclass.SeatsAvailable = *req.SeatsAvailable
	}
	if req.CoverImage != "" {
		masterclass.CoverImage = req.CoverImage
	}
	if req.VideoURL != "" {
		masterclass.VideoURL = req.VideoURL
	}
	if req.IsUpcoming != nil {
		masterclass.IsUpcoming = *req.IsUpcoming
	}
	if req.IsActive != nil {
		masterclass.IsActive = *req.IsActive
	}

	result = database.GetDB().Save(&masterclass)
	if result.Error != nil {
		log.Error("Failed to update masterclass", zap.String("masterclass_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update masterclass"})
	}

	log.Info("Masterclass updated", zap.Uint("masterclass_id", masterclass.ID))
	prometheus.RecordContentOperation("masterclass", "update")
	return c.JSON(http.StatusOK, masterclass)
}

// DeleteMasterclass hard-deletes a masterclass. Its registrations are
// deleted first; the cleanup is managed here, not by the database.
func DeleteMasterclass(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var masterclass model.Masterclass
	result := database.GetDB().First(&masterclass, "id = ?", id)
	if result.Error != nil {
		log.Warn("Masterclass not found", zap.String("masterclass_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Masterclass not found"})
	}

	registrations := database.GetDB().Where("masterclass_id = ?", masterclass.ID).Delete(&model.MasterclassRegistration{})
	if registrations.Error != nil {
		log.Error("Failed to delete registrations", zap.Uint("masterclass_id", masterclass.ID), zap.Error(registrations.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete masterclass"})
	}

	result = database.GetDB().Delete(&masterclass)
	if result.Error != nil {
		log.Error("Failed to delete masterclass", zap.Uint("masterclass_id", masterclass.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete masterclass"})
	}

	log.Info("Masterclass deleted",
		zap.Uint("masterclass_id", masterclass.ID),
		zap.Int64("registrations_deleted", registrations.RowsAffected))
	prometheus.RecordContentOperation("masterclass", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Masterclass deleted successfully"})
}

// RegisterForMasterclass registers an attendee and decrements the
// seat counter by one. The create and the decrement are two separate
// statements; with REGISTRATION_GUARD_SEATS enabled registrations are
// rejected once no seats remain, otherwise the counter may go
// negative under concurrent registrations.
func RegisterForMasterclass(c echo.Context) error {
	log := logger.FromContext(c)

	var req RegistrationRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.FullName == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Full name is required"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email is required"})
	}

	var masterclass model.Masterclass
	result := database.GetDB().First(&masterclass, "id = ?", req.MasterclassID)
	if result.Error != nil {
		log.Warn("Masterclass not found", zap.Uint("masterclass_id", req.MasterclassID), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Masterclass not found"})
	}

	if guardSeats && masterclass.SeatsAvailable <= 0 {
		log.Warn("Registration rejected, no seats available",
			zap.Uint("masterclass_id", masterclass.ID))
		return c.JSON(http.StatusConflict, echo.Map{"error": "No seats available"})
	}

	registration := model.MasterclassRegistration{
		MasterclassID:       masterclass.ID,
		MasterclassTitle:    masterclass.Title,
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		Occupation:          req.Occupation,
		SubscribeNewsletter: req.SubscribeNewsletter,
	}

	result = database.GetDB().Create(&registration)
	if result.Error != nil {
		log.Error("Failed to create registration", zap.Uint("masterclass_id", masterclass.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to register"})
	}

	decrement := database.GetDB().Model(&model.Masterclass{}).
		Where("id = ?", masterclass.ID).
		Update("seats_available", masterclass.SeatsAvailable-1)
	if decrement.Error != nil {
		log.Error("Failed to decrement seat counter", zap.Uint("masterclass_id", masterclass.ID), zap.Error(decrement.Error))
	}

	if req.SubscribeNewsletter {
		if _, err := upsertNewsletterSubscription(req.Email); err != nil {
			// The registration itself succeeded; only log the side effect failure
			log.Warn("Failed to subscribe registrant to newsletter",
				zap.String("email", req.Email),
				zap.Error(err))
		}
	}

	log.Info("Registration created",
		zap.Uint("registration_id", registration.ID),
		zap.Uint("masterclass_id", masterclass.ID),
		zap.Int("seats_remaining", masterclass.SeatsAvailable-1))
	prometheus.RegistrationsCounter.Inc()
	return c.JSON(http.StatusCreated, registration)
}

// ListRegistrations retrieves masterclass registrations, newest
// first. ?masterclass= filters by masterclass ID.
func ListRegistrations(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Order("created_at desc")
	if masterclassID := c.QueryParam("masterclass"); masterclassID != "" {
		query = query.Where("masterclass_id = ?", masterclassID)
	}

	var registrations []model.MasterclassRegistration
	result := query.Find(&registrations)
	if result.Error != nil {
		log.Error("Failed to retrieve registrations", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve registrations"})
	}

	return c.JSON(http.StatusOK, registrations)
}

// DeleteRegistration hard-deletes a registration. The seat counter is
// not incremented back; freeing a seat is an explicit admin edit.
func DeleteRegistration(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var registration model.MasterclassRegistration
	result := database.GetDB().First(&registration, "id = ?", id)
	if result.Error != nil {
		log.Warn("Registration not found", zap.String("registration_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Registration not found"})
	}

	result = database.GetDB().Delete(&registration)
	if result.Error != nil {
		log.Error("Failed to delete registration", zap.Uint("registration_id", registration.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to delete registration"})
	}

	log.Info("Registration deleted", zap.Uint("registration_id", registration.ID))
	return c.JSON(http.StatusOK, echo.Map{"message": "Registration deleted successfully"})
}
