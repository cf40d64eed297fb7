package postgres

import (
	"context"

	"beanwatch/internal/domain/entity"
	domainerrors "beanwatch/internal/domain/errors"
	"beanwatch/internal/domain/policy"
	"beanwatch/internal/domain/repository"
	"beanwatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// listOrder keeps pagination stable when several rows share a created_at.
const listOrder = "created_at DESC, id DESC"

// stockRepository implements the repository.StockRepository interface using GORM.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// Create persists a new stock-condition record.
func (repo *stockRepository) Create(ctx context.Context, stock *entity.StockCondition) error {
	stockM := fromStockDomain(stock)

	if err := repo.db.WithContext(ctx).Create(stockM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("owner does not exist")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required stock information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create stock condition")
	}

	// Update the entity with generated values
	stock.ID = stockM.ID
	stock.CreatedAt = stockM.CreatedAt
	stock.UpdatedAt = stockM.UpdatedAt

	return nil
}

// FindByID retrieves a single record by its unique ID.
func (repo *stockRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StockCondition, error) {
	var stockM model.StockConditionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock condition by id")
	}

	return toStockDomain(&stockM), nil
}

// Update saves the full record. The mapped model carries the stored user_id,
// so ownership cannot change through this path.
func (repo *stockRepository) Update(ctx context.Context, stock *entity.StockCondition) error {
	stockM := fromStockDomain(stock)

	if err := repo.db.WithContext(ctx).Save(stockM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required stock information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update stock condition")
	}

	stock.UpdatedAt = stockM.UpdatedAt

	return nil
}

// Delete removes a record by its unique ID.
func (repo *stockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StockConditionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete stock condition")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStockNotFound
	}

	return nil
}

// FindPage retrieves one page of records within the given scope, newest
// first, plus the total row count for that scope.
func (repo *stockRepository) FindPage(ctx context.Context, scope policy.ListScope, page, perPage int) ([]*entity.StockCondition, int64, error) {
	scoped := func() *gorm.DB {
		query := repo.db.WithContext(ctx).Model(&model.StockConditionModel{})
		if scope.OwnerID != nil {
			query = query.Where("user_id = ?", *scope.OwnerID)
		}

		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count stock conditions")
	}

	query := scoped().
		Order(listOrder).
		Limit(perPage).
		Offset((page - 1) * perPage)
	if scope.OwnerID == nil {
		// Unscoped listings are admin views and show each record's owner.
		query = query.Preload("User")
	}

	var stockMs []model.StockConditionModel
	if err := query.Find(&stockMs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list stock conditions")
	}

	stocks := make([]*entity.StockCondition, 0, len(stockMs))
	for i := range stockMs {
		stocks = append(stocks, toStockDomain(&stockMs[i]))
	}

	return stocks, total, nil
}

// Aggregate computes the cross-owner summary over every record.
func (repo *stockRepository) Aggregate(ctx context.Context) (*repository.AggregateSummary, error) {
	var summary repository.AggregateSummary

	if err := repo.db.WithContext(ctx).
		Model(&model.StockConditionModel{}).
		Select("COUNT(DISTINCT user_id) AS total_users, COALESCE(AVG(temperature), 0) AS avg_temperature, COALESCE(AVG(humidity), 0) AS avg_humidity").
		Scan(&summary).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate stock conditions")
	}

	return &summary, nil
}

// FindLatest retrieves the most recently created record across all owners.
func (repo *stockRepository) FindLatest(ctx context.Context) (*entity.StockCondition, error) {
	var stockM model.StockConditionModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Order(listOrder).
		First(&stockM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest stock condition")
	}

	return toStockDomain(&stockM), nil
}

// --- Mapper Functions ---

// toStockDomain converts a GORM StockConditionModel to a domain entity.
func toStockDomain(data *model.StockConditionModel) *entity.StockCondition {
	if data == nil {
		return nil
	}

	return &entity.StockCondition{
		ID:           data.ID,
		UserID:       data.UserID,
		BeanType:     data.BeanType,
		Quantity:     data.Quantity,
		Temperature:  data.Temperature,
		Humidity:     data.Humidity,
		Status:       entity.StockStatus(data.Status),
		Location:     data.Location,
		AirCondition: data.AirCondition,
		ActionTaken:  data.ActionTaken,
		LastUpdated:  data.LastUpdated,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Owner:        toUserDomain(data.User),
	}
}

// fromStockDomain converts a domain entity to a GORM StockConditionModel.
// The Owner association is display-only and never written back.
func fromStockDomain(data *entity.StockCondition) *model.StockConditionModel {
	if data == nil {
		return nil
	}

	return &model.StockConditionModel{
		ID:           data.ID,
		UserID:       data.UserID,
		BeanType:     data.BeanType,
		Quantity:     data.Quantity,
		Temperature:  data.Temperature,
		Humidity:     data.Humidity,
		Status:       data.Status.String(),
		Location:     data.Location,
		AirCondition: data.AirCondition,
		ActionTaken:  data.ActionTaken,
		LastUpdated:  data.LastUpdated,
		CreatedAt:    data.CreatedAt,
	}
}
