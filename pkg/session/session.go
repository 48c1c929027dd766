// Package session issues and validates the signed admin session
// cookie. There is a single admin identity configured through the
// environment; the token only carries the username.
package session

import (
	"errors"
	"fmt"
	"time"

	"consulting-site/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims represents the JWT claims carried by the session cookie
type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

var cfg *config.SessionConfig

// Initialize sets the session configuration for the package-level helpers
func Initialize(c *config.SessionConfig) {
	cfg = c
}

// CookieName returns the configured session cookie name
func CookieName() string {
	if cfg == nil {
		return "admin_session"
	}
	return cfg.CookieName
}

// GenerateToken creates a signed session token for the admin user
func GenerateToken(username string) (string, error) {
	if cfg == nil {
		return "", errors.New("session configuration not provided")
	}

	claims := AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.ExpirationHours) * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SigningKey))
}

// ValidateToken validates and parses a session token
func ValidateToken(tokenString string) (*AdminClaims, error) {
	if cfg == nil {
		return nil, errors.New("session configuration not provided")
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&AdminClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(cfg.SigningKey), nil
		},
	)

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid session token")
}
