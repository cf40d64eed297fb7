package postgres

import (
	"context"
	"time"

	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/domain/repository"
	"beanwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the repository.TokenRepository interface using GORM.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// CreateToken persists a new access-token record.
func (repo *tokenRepository) CreateToken(ctx context.Context, token *entity.AccessToken) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("token owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create access token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// FindTokenByID retrieves an access-token record by its unique ID (jti).
func (repo *tokenRepository) FindTokenByID(ctx context.Context, id uuid.UUID) (*entity.AccessToken, error) {
	var tokenM model.AccessTokenModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find access token by id")
	}

	return toTokenDomain(&tokenM), nil
}

// DeleteToken removes an access-token record, ending that session.
func (repo *tokenRepository) DeleteToken(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AccessTokenModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete access token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteExpiredTokens removes all expired token records.
func (repo *tokenRepository) DeleteExpiredTokens(ctx context.Context) error {
	if err := repo.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&model.AccessTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete expired access tokens")
	}

	return nil
}

// --- Mapper Functions ---

func toTokenDomain(data *model.AccessTokenModel) *entity.AccessToken {
	if data == nil {
		return nil
	}

	return &entity.AccessToken{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromTokenDomain(data *entity.AccessToken) *model.AccessTokenModel {
	if data == nil {
		return nil
	}

	return &model.AccessTokenModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		ExpiresAt: data.ExpiresAt,
	}
}
