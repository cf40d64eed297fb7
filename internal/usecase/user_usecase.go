package usecase

import (
	"context"

	"beanwatch/internal/domain/entity"
	"beanwatch/internal/domain/policy"
)

// --- Input DTOs ---

// ProvisionUserInput defines the data required for an admin to create a
// user with an explicit role.
type ProvisionUserInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// UserUsecase defines the interface for admin user-management operations.
type UserUsecase interface {
	// ListUsers retrieves every account with its role, admin only.
	ListUsers(ctx context.Context, p policy.Principal) ([]*entity.User, error)

	// ProvisionUser creates an account with the given role, admin only.
	ProvisionUser(ctx context.Context, p policy.Principal, input ProvisionUserInput) (*entity.User, error)

	// ListRoles retrieves the closed role catalog, admin only.
	ListRoles(ctx context.Context, p policy.Principal) ([]*entity.RoleEntry, error)
}
