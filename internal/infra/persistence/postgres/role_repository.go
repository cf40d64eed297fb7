package postgres

import (
	"context"

	"beanwatch/internal/domain/entity"
	"beanwatch/internal/domain/repository"
	"beanwatch/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the repository.RoleRepository interface using GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// FindAll retrieves every role in the catalog, in seeded order.
func (repo *roleRepository) FindAll(ctx context.Context) ([]*entity.RoleEntry, error) {
	var roleMs []model.RoleModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&roleMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]*entity.RoleEntry, 0, len(roleMs))
	for i := range roleMs {
		roles = append(roles, &entity.RoleEntry{
			ID:    roleMs[i].ID,
			Name:  roleMs[i].Name,
			Guard: roleMs[i].GuardName,
		})
	}

	return roles, nil
}
