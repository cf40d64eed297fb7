// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"beanwatch/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	User        *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account. Self-registration always yields a
	// farmer; role selection is reserved for admin provisioning.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a revocable bearer token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout revokes the session identified by the presented token's ID.
	Logout(ctx context.Context, tokenID uuid.UUID) error
}
