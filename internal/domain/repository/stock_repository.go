package repository

import (
	"context"
	"errors"

	"beanwatch/internal/domain/entity"
	"beanwatch/internal/domain/policy"

	"github.com/google/uuid"
)

// ErrStockNotFound is a domain-specific error returned when a stock-condition
// record is not found.
var ErrStockNotFound = errors.New("stock condition not found")

// AggregateSummary holds the cross-owner aggregate the admin listing answers
// with. Averages are raw SQL averages; rounding is the use case's concern.
type AggregateSummary struct {
	TotalUsers     int64
	AvgTemperature float64
	AvgHumidity    float64
}

// StockRepository defines the standard operations for stock-condition persistence.
type StockRepository interface {
	// Create persists a new stock-condition record.
	Create(ctx context.Context, stock *entity.StockCondition) error

	// FindByID retrieves a single record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StockCondition, error)

	// Update modifies an existing record. The stored user_id is never changed.
	Update(ctx context.Context, stock *entity.StockCondition) error

	// Delete removes a record by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindPage retrieves one page of records within the given scope, newest
	// first, together with the total row count for that scope. An unscoped
	// listing additionally loads each record's owner.
	FindPage(ctx context.Context, scope policy.ListScope, page, perPage int) ([]*entity.StockCondition, int64, error)

	// Aggregate computes the cross-owner summary over every record.
	// TotalUsers counts distinct recording users, not rows.
	Aggregate(ctx context.Context) (*AggregateSummary, error)

	// FindLatest retrieves the most recently created record across all
	// owners, or ErrStockNotFound when the table is empty.
	FindLatest(ctx context.Context) (*entity.StockCondition, error)
}
