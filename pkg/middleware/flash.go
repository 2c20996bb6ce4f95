package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"backoffice-dashboard/pkg/contextkeys"
)

const FlashSessionCookie = "dashboard_flash"

// FlashSession gives every browser a stable id under which notifications
// survive the redirect after a form post.
func FlashSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := ""
		if cookie, err := c.Cookie(FlashSessionCookie); err == nil {
			if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
				sessionID = cookie.Value
			}
		}
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     FlashSessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.FlashSessionIDKey, sessionID)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}
