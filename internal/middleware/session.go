package middleware

import (
	"net/http"

	"consulting-site/pkg/logger"
	"consulting-site/pkg/session"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// sessionAllowList holds the only admin-prefixed paths reachable
// without a session: the login page and the login API.
var sessionAllowList = map[string]struct{}{
	"/admin/login":     {},
	"/api/admin/login": {},
}

// SessionMiddleware gates admin routes behind the signed session
// cookie. Requests without a valid cookie are rejected with 401.
func SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		if _, allowed := sessionAllowList[c.Path()]; allowed {
			return next(c)
		}

		cookie, err := c.Cookie(session.CookieName())
		if err != nil || cookie.Value == "" {
			log.Warn("Missing session cookie", zap.String("path", c.Path()))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Authentication required"})
		}

		claims, err := session.ValidateToken(cookie.Value)
		if err != nil {
			log.Warn("Invalid or expired session", zap.Error(err))
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "Invalid or expired session"})
		}

		// Store admin identity in context for later use
		c.Set("admin_username", claims.Username)

		return next(c)
	}
}
