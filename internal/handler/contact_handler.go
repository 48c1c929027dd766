package handler

import (
	"net/http"

	"consulting-site/internal/model"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ContactRequest defines the structure for contact form submissions
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContactMessage stores a contact form submission. Name, email
// and message are required; each missing field gets its own error.
func SubmitContactMessage(c echo.Context) error {
	log := logger.FromContext(c)

	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Name is required", "field": "name"})
	}
	if req.Email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Email is required", "field": "email"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Message is required", "field": "message"})
	}

	message := model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	result := database.GetDB().Create(&message)
	if result.Error != nil {
		log.Error("Failed to store contact message", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to send message"})
	}

	log.Info("Contact message received",
		zap.Uint("message_id", message.ID),
		zap.String("email", message.Email))
	return c.JSON(http.StatusCreated, echo.Map{"message": "Message sent successfully"})
}

// ListContactMessages retrieves contact messages for the admin panel,
// newest first. ?unread=true restricts to unread messages.
func ListContactMessages(c echo.Context) error {
	log := logger.FromContext(c)

	query := database.GetDB().Order("created_at desc")
	if c.QueryParam("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	var messages []model.ContactMessage
	result := query.Find(&messages)
	if result.Error != nil {
		log.Error("Failed to retrieve contact messages", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve messages"})
	}

	return c.JSON(http.StatusOK, messages)
}

// MarkContactMessageRead marks a contact message as read
func MarkContactMessageRead(c echo.Context) error {
	log := logger.FromContext(c)
	id := c.Param("id")

	var message model.ContactMessage
	result := database.GetDB().First(&message, "id = ?", id)
	if result.Error != nil {
		log.Warn("Contact message not found", zap.String("message_id", id), zap.Error(result.Error))
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Message not found"})
	}

	result = database.GetDB().Model(&message).Update("is_read", true)
	if result.Error != nil {
		log.Error("Failed to mark message read", zap.Uint("message_id", message.ID), zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to update message"})
	}

	message.IsRead = true
	log.Info("Contact message marked read", zap.Uint("message_id", message.ID))
	return c.JSON(http.StatusOK, message)
}
