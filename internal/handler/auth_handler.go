package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	"consulting-site/internal/model"
	"consulting-site/pkg/config"
	"consulting-site/pkg/database"
	"consulting-site/pkg/logger"
	"consulting-site/pkg/session"
	"consulting-site/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var adminConfig config.AdminConfig
var sessionConfig config.SessionConfig

// InitAuthHandler initializes the auth handler with configuration
func InitAuthHandler(cfg *config.Config) {
	adminConfig = cfg.Admin
	sessionConfig = cfg.Session
}

// LoginRequest defines the structure for admin login requests
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login checks the configured admin credentials and sets the session cookie
func Login(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.LoginAttemptsCounter.Inc()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid login request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if adminConfig.Password == "" {
		log.Error("Admin password is not configured")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Admin login is not configured"})
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(adminConfig.Username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminConfig.Password)) == 1
	if !usernameOK || !passwordOK {
		log.Warn("Failed admin login attempt", zap.String("username", req.Username))
		prometheus.LoginFailureCounter.Inc()
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid username or password"})
	}

	token, err := session.GenerateToken(req.Username)
	if err != nil {
		log.Error("Failed to generate session token", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create session"})
	}

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(time.Duration(sessionConfig.ExpirationHours) * time.Hour),
	})

	// Best-effort last-login bookkeeping; login succeeds even if it fails
	result := database.GetDB().Model(&model.User{}).
		Where("username = ?", req.Username).
		Update("last_login_at", time.Now())
	if result.Error != nil {
		log.Warn("Failed to record last login", zap.Error(result.Error))
	}

	log.Info("Admin logged in", zap.String("username", req.Username))
	prometheus.LoginSuccessCounter.Inc()
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Login successful",
		"username": req.Username,
	})
}

// Logout clears the session cookie
func Logout(c echo.Context) error {
	log := logger.FromContext(c)

	c.SetCookie(&http.Cookie{
		Name:     session.CookieName(),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	log.Info("Admin logged out")
	return c.JSON(http.StatusOK, echo.Map{"message": "Logout successful"})
}

// CheckSession reports the authenticated admin identity. The session
// middleware has already rejected anonymous requests by the time this
// handler runs.
func CheckSession(c echo.Context) error {
	username, _ := c.Get("admin_username").(string)
	return c.JSON(http.StatusOK, echo.Map{
		"authenticated": true,
		"username":      username,
	})
}
