package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is the server-side record of an issued bearer token.
// The ID doubles as the token's jti claim; deleting the row revokes the
// token immediately even though the JWT itself is stateless.
type AccessToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
