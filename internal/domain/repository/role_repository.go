package repository

import (
	"context"

	"beanwatch/internal/domain/entity"
)

// RoleRepository exposes the seeded role catalog. The set is closed; there
// are no write operations.
type RoleRepository interface {
	// FindAll retrieves every role in the catalog, in seeded order.
	FindAll(ctx context.Context) ([]*entity.RoleEntry, error)
}
