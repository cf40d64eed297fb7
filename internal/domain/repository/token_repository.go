package repository

import (
	"context"

	"beanwatch/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when an access-token record is not found.
// A missing row means the token was revoked or never issued.
var ErrTokenNotFound = errors.New("access token not found")

// TokenRepository defines the interface for access-token session management.
// Each issued bearer token has a row here; deleting the row revokes it.
type TokenRepository interface {
	// CreateToken persists a new access-token record, representing a session.
	CreateToken(ctx context.Context, token *entity.AccessToken) error

	// FindTokenByID retrieves an access-token record by its unique ID (jti).
	FindTokenByID(ctx context.Context, id uuid.UUID) (*entity.AccessToken, error)

	// DeleteToken removes an access-token record, ending that session.
	DeleteToken(ctx context.Context, id uuid.UUID) error

	// DeleteExpiredTokens removes all expired token records. The session
	// sweeper calls this periodically.
	DeleteExpiredTokens(ctx context.Context) error
}
