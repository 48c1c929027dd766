package handler

import (
	"errors"
	"net/http"
	"strings"

	"consulting-site/internal/model"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// errAlreadySubscribed signals an active duplicate subscription
var errAlreadySubscribed = errors.New("email already subscribed")

// NewsletterRequest defines the structure for newsletter subscription requests
type NewsletterRequest struct {
	Email string `json:"email"`
}

// SubscribeNewsletter subscribes an email address. Emails are unique:
// an active duplicate is reported as already subscribed, a previously
// unsubscribed email is reactivated in place.
func SubscribeNewsletter(c echo.Context) error {
	log := logger.FromContext(c)

	var req NewsletterRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "A valid email is required"})
	}

	subscription, err := upsertNewsletterSubscription(email)
	if errors.Is(err, errAlreadySubscribed) {
		log.Info("Duplicate newsletter subscription", zap.String("email", email))
		return c.JSON(http.StatusOK, echo.Map{"message": "Email already subscribed"})
	}
	if err != nil {
		log.Error("Failed to subscribe email", zap.String("email", email), zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to subscribe"})
	}

	log.Info("Newsletter subscription created",
		zap.Uint("subscription_id", subscription.ID),
		zap.String("email", email))
	return c.JSON(http.StatusCreated, echo.Map{"message": "Successfully subscribed"})
}

// ListNewsletterSubscriptions retrieves all subscriptions for the admin panel
func ListNewsletterSubscriptions(c echo.Context) error {
	log := logger.FromContext(c)

	var subscriptions []model.NewsletterSubscription
	result := database.GetDB().Order("created_at desc").Find(&subscriptions)
	if result.Error != nil {
		log.Error("Failed to retrieve subscriptions", zap.Error(result.Error))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to retrieve subscriptions"})
	}

	return c.JSON(http.StatusOK, subscriptions)
}

// upsertNewsletterSubscription creates or reactivates the single
// subscription row for an email. Returns errAlreadySubscribed when
// the email is already active.
func upsertNewsletterSubscription(email string) (*model.NewsletterSubscription, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	var subscription model.NewsletterSubscription
	err := database.GetDB().Where("email = ?", email).First(&subscription).Error
	switch {
	case err == nil:
		if subscription.IsActive {
			return &subscription, errAlreadySubscribed
		}
		if err := database.GetDB().Model(&subscription).Update("is_active", true).Error; err != nil {
			return nil, err
		}
		subscription.IsActive = true
		return &subscription, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		subscription = model.NewsletterSubscription{Email: email, IsActive: true}
		if err := database.GetDB().Create(&subscription).Error; err != nil {
			return nil, err
		}
		return &subscription, nil
	default:
		return nil, err
	}
}
