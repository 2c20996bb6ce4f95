package middleware

import (
	"context"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backoffice-dashboard/pkg/contextkeys"
)

const AccessTokenCookie = "access_token"

// AuthMiddleware does not authenticate: the backend owns that. It picks up the
// caller's access token so the REST client can forward it, and reads the
// token's subject for log context.
type AuthMiddleware struct {
	parser *jwt.Parser
	logger *zap.Logger
}

func NewAuthMiddleware(logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		parser: jwt.NewParser(),
		logger: logger,
	}
}

func (m *AuthMiddleware) ForwardToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = strings.TrimSpace(cookie.Value)
			}
		}
		if tokenString == "" {
			return next(c)
		}

		ctx := context.WithValue(c.Request().Context(), contextkeys.AccessTokenKey, tokenString)
		if userID := m.subject(tokenString); userID != "" {
			ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
		}
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// subject returns the user id claim without verifying the signature.
func (m *AuthMiddleware) subject(tokenString string) string {
	claims := jwt.MapClaims{}
	if _, _, err := m.parser.ParseUnverified(tokenString, claims); err != nil {
		m.logger.Debug("AuthMiddleware: token is not a JWT, forwarding as is", zap.Error(err))
		return ""
	}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		return sub
	}
	switch v := claims["userId"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
