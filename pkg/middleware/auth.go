package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/burnashoff2016/Yandex-AI/entities"
	"github.com/burnashoff2016/Yandex-AI/pkg/auth/service"
)

// JWT validates the bearer token and stores the authenticated user
// under the "user" context key.
func JWT(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Could not validate credentials"})
			}
			u, err := auth.ParseToken(token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Could not validate credentials"})
			}
			c.Set("user", u)
			return next(c)
		}
	}
}

// AdminOnly allows only users with the admin role. Must run after JWT.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := c.Get("user").(*entities.User)
			if !ok || !u.IsAdmin() {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Not enough permissions"})
			}
			return next(c)
		}
	}
}
