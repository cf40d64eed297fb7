package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "beanwatch/internal/delivery/context"
	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/domain/policy"
	"beanwatch/internal/domain/repository"
	"beanwatch/internal/domain/service"
	mockRepo "beanwatch/internal/mocks/repository"
	mockSvc "beanwatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authMiddlewareFixtures holds all test dependencies for auth middleware tests.
type authMiddlewareFixtures struct {
	middleware *AuthMiddleware
	tokenSvc   *mockSvc.MockTokenService
	tokenRepo  *mockRepo.MockTokenRepository
}

func createTestAuthMiddleware(t *testing.T) authMiddlewareFixtures {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)

	return authMiddlewareFixtures{
		middleware: NewAuthMiddleware(tokenSvc, tokenRepo),
		tokenSvc:   tokenSvc,
		tokenRepo:  tokenRepo,
	}
}

func newEchoContext(authHeader string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/stocks", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func noopHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return nil
	}
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	userID := uuid.New()
	tokenID := uuid.New()
	c := newEchoContext("Bearer signed-token")

	fx.tokenSvc.EXPECT().
		ValidateToken("signed-token").
		Return(&service.Claims{UserID: userID, Role: entity.RoleFarmer, TokenID: tokenID}, nil)

	fx.tokenRepo.EXPECT().
		FindTokenByID(c.Request().Context(), tokenID).
		Return(&entity.AccessToken{
			ID:        tokenID,
			UserID:    userID,
			ExpiresAt: time.Now().Add(time.Hour),
		}, nil)

	called := false
	err := fx.middleware.Authenticate(noopHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)

	p, ok := deliverycontext.GetPrincipal(c)
	require.True(t, ok)
	assert.Equal(t, policy.Principal{ID: userID, Role: entity.RoleFarmer}, p)

	storedTokenID, ok := deliverycontext.GetTokenID(c)
	require.True(t, ok)
	assert.Equal(t, tokenID, storedTokenID)
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newEchoContext("")

	called := false
	err := fx.middleware.Authenticate(noopHandler(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newEchoContext("Basic dXNlcjpwYXNz")

	called := false
	err := fx.middleware.Authenticate(noopHandler(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newEchoContext("Bearer bad-token")

	fx.tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(nil, assert.AnError)

	called := false
	err := fx.middleware.Authenticate(noopHandler(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, called)
}

// A structurally valid token whose session row is gone was logged out.
func TestAuthMiddleware_Authenticate_RevokedSession(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	tokenID := uuid.New()
	c := newEchoContext("Bearer signed-token")

	fx.tokenSvc.EXPECT().
		ValidateToken("signed-token").
		Return(&service.Claims{UserID: uuid.New(), Role: entity.RoleFarmer, TokenID: tokenID}, nil)

	fx.tokenRepo.EXPECT().
		FindTokenByID(c.Request().Context(), tokenID).
		Return(nil, repository.ErrTokenNotFound)

	called := false
	err := fx.middleware.Authenticate(noopHandler(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)
	assert.False(t, called)
}

func TestAuthMiddleware_Authenticate_ExpiredSession(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	tokenID := uuid.New()
	c := newEchoContext("Bearer signed-token")

	fx.tokenSvc.EXPECT().
		ValidateToken("signed-token").
		Return(&service.Claims{UserID: uuid.New(), Role: entity.RoleFarmer, TokenID: tokenID}, nil)

	fx.tokenRepo.EXPECT().
		FindTokenByID(c.Request().Context(), tokenID).
		Return(&entity.AccessToken{
			ID:        tokenID,
			ExpiresAt: time.Now().Add(-time.Minute),
		}, nil)

	called := false
	err := fx.middleware.Authenticate(noopHandler(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrTokenNotFound)
	assert.False(t, called)
}

func TestAuthMiddleware_RequireAdmin_Admin(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newEchoContext("")
	deliverycontext.SetPrincipal(c, policy.Principal{ID: uuid.New(), Role: entity.RoleAdmin})

	called := false
	err := fx.middleware.RequireAdmin(noopHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestAuthMiddleware_RequireAdmin_Farmer(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newEchoContext("")
	deliverycontext.SetPrincipal(c, policy.Principal{ID: uuid.New(), Role: entity.RoleFarmer})

	called := false
	err := fx.middleware.RequireAdmin(noopHandler(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.False(t, called)
}

func TestAuthMiddleware_RequireAdmin_NoPrincipal(t *testing.T) {
	fx := createTestAuthMiddleware(t)

	c := newEchoContext("")

	called := false
	err := fx.middleware.RequireAdmin(noopHandler(&called))(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	assert.False(t, called)
}
