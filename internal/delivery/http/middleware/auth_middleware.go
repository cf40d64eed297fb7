// Package middleware contains HTTP middleware for the echo delivery.
package middleware

import (
	"strings"
	"time"

	deliverycontext "beanwatch/internal/delivery/context"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/domain/policy"
	"beanwatch/internal/domain/repository"
	"beanwatch/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for bearer-token authentication and
// role gating. Returned errors fall through to the centralized error handler.
type AuthMiddleware struct {
	tokenSvc  service.TokenService
	tokenRepo repository.TokenRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, tokenRepo repository.TokenRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, tokenRepo: tokenRepo}
}

// Authenticate validates the bearer token: signature and expiry first, then
// the jti session row, so a logged-out token fails even before it expires.
// On success the principal and token id are stored on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		session, err := m.tokenRepo.FindTokenByID(c.Request().Context(), claims.TokenID)
		if err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return domainerrors.ErrTokenNotFound
			}

			return errors.Wrap(err, "failed to look up token session")
		}
		if time.Now().After(session.ExpiresAt) {
			return domainerrors.ErrTokenNotFound
		}

		deliverycontext.SetPrincipal(c, policy.Principal{ID: claims.UserID, Role: claims.Role})
		deliverycontext.SetTokenID(c, claims.TokenID)

		return next(c)
	}
}

// RequireAdmin refuses non-admin principals outright. It must be used AFTER
// Authenticate. The use-case layer re-checks through the policy; this gate
// only keeps obviously unauthorized traffic off admin routes.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		p, ok := deliverycontext.GetPrincipal(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}
		if !p.IsAdmin() {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}
