package service

import (
	"time"

	"beanwatch/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens. The token ID (jti)
// links the stateless JWT to its server-side session row, which is what
// makes logout an immediate revocation.
type Claims struct {
	UserID  uuid.UUID
	Role    entity.Role
	TokenID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new signed access token for a given user.
	// The returned tokenID is the jti claim and must be persisted so the
	// token can be revoked.
	GenerateToken(userID uuid.UUID, role entity.Role) (token string, tokenID uuid.UUID, err error)

	// ValidateToken checks the signature and expiry of a token string.
	// It does not consult storage; the caller checks the jti row.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the configured access-token lifetime.
	GetTokenDuration() time.Duration
}
