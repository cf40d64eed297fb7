package context

import (
	"beanwatch/internal/domain/policy"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyPrincipal is the key for the authenticated principal.
	KeyPrincipal ContextKey = "principal"

	// KeyTokenID is the key for the presented token's jti.
	KeyTokenID ContextKey = "token_id"
)

// SetPrincipal stores the authenticated principal on the echo context.
// Only the auth middleware writes it, after the token checked out.
func SetPrincipal(c echo.Context, p policy.Principal) {
	c.Set(string(KeyPrincipal), p)
}

// GetPrincipal retrieves the authenticated principal from the echo context.
func GetPrincipal(c echo.Context) (policy.Principal, bool) {
	p, ok := c.Get(string(KeyPrincipal)).(policy.Principal)

	return p, ok
}

// SetTokenID stores the presented token's jti on the echo context so logout
// can revoke exactly the session that made the call.
func SetTokenID(c echo.Context, id uuid.UUID) {
	c.Set(string(KeyTokenID), id)
}

// GetTokenID retrieves the presented token's jti from the echo context.
func GetTokenID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyTokenID)).(uuid.UUID)

	return id, ok
}
