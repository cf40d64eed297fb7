package usecase

import (
	"context"

	"beanwatch/internal/domain/entity"
	"beanwatch/internal/domain/policy"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateStockInput defines the data required to record a stock condition.
// The owner is never part of the input; it is stamped from the principal.
type CreateStockInput struct {
	BeanType     string
	Quantity     float64
	Temperature  float64
	Humidity     float64
	Status       entity.StockStatus
	Location     string
	AirCondition string
	ActionTaken  *string
}

// UpdateStockInput defines a partial update. Nil fields are left untouched.
type UpdateStockInput struct {
	BeanType     *string
	Quantity     *float64
	Temperature  *float64
	Humidity     *float64
	Status       *entity.StockStatus
	Location     *string
	AirCondition *string
	ActionTaken  *string
}

// PageInput selects one page of a listing.
type PageInput struct {
	Page    int
	PerPage int
}

// --- Output DTOs ---

// StockPage is one page of stock-condition rows plus the total row count
// for the listing's scope.
type StockPage struct {
	Items   []*entity.StockCondition
	Total   int64
	Page    int
	PerPage int
}

// StockSummary is the aggregate view admins receive on the shared listing
// endpoint. Averages are rounded to two decimal places.
type StockSummary struct {
	TotalUsers      int64
	AvgTemperature  float64
	AvgHumidity     float64
	LatestCondition *entity.StockCondition
}

// StockListOutput is the role-divergent answer of the shared listing: a
// farmer gets a Page of their own rows, an admin gets a Summary. Exactly
// one of the two is set.
type StockListOutput struct {
	Page    *StockPage
	Summary *StockSummary
}

// StockUsecase defines the interface for stock-condition business operations.
// Every method takes the acting principal explicitly; authorization is
// decided by the policy package, never here or in handlers.
type StockUsecase interface {
	// Create records a new reading owned by the principal.
	Create(ctx context.Context, p policy.Principal, input CreateStockInput) (*entity.StockCondition, error)

	// Get retrieves a single record the principal may see.
	Get(ctx context.Context, p policy.Principal, id uuid.UUID) (*entity.StockCondition, error)

	// Update partially updates a record the principal may modify.
	Update(ctx context.Context, p policy.Principal, id uuid.UUID, input UpdateStockInput) (*entity.StockCondition, error)

	// Delete removes a record the principal may modify.
	Delete(ctx context.Context, p policy.Principal, id uuid.UUID) error

	// List answers the shared listing endpoint: scoped rows for farmers,
	// an aggregate summary for admins.
	List(ctx context.Context, p policy.Principal, page PageInput) (*StockListOutput, error)

	// ListAll lists every record with owners, admin only.
	ListAll(ctx context.Context, p policy.Principal, page PageInput) (*StockPage, error)
}
