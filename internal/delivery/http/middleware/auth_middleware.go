package middleware

import (
	"strings"

	"pluvio/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the caller's identity from a JWT session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// ResolveIdentity attaches the caller's user id to the context when a valid
// Bearer token is present. No route is gated on it: requests without a token
// pass through untouched, keeping the original API contract intact.
func (m *AuthMiddleware) ResolveIdentity(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return next(c)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return next(c)
		}

		userID, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			// An invalid token only costs the caller their resolved identity.
			return next(c)
		}

		c.Set("userID", userID)

		return next(c)
	}
}
