package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockStatus is the closed set of condition statuses a reading may carry.
// Anything outside the set must fail validation, never be coerced.
type StockStatus string

const (
	// StatusGood indicates the stock is within normal parameters.
	StatusGood StockStatus = "Good"
	// StatusWarning indicates the stock needs attention.
	StatusWarning StockStatus = "Warning"
	// StatusCritical indicates the stock needs immediate action.
	StatusCritical StockStatus = "Critical"
)

// String returns the string representation of the StockStatus.
func (s StockStatus) String() string {
	return string(s)
}

// IsValid checks if the StockStatus is a valid value.
func (s StockStatus) IsValid() bool {
	switch s {
	case StatusGood, StatusWarning, StatusCritical:
		return true
	default:
		return false
	}
}

// StockCondition is a point-in-time environmental reading recorded by a
// farmer. UserID is stamped from the authenticated principal at creation
// and never changed by an update, regardless of the request payload.
// LastUpdated is set explicitly to the operation time on create/update and
// is distinct from the row-level UpdatedAt timestamp.
type StockCondition struct {
	ID           uuid.UUID   `json:"id"`
	UserID       uuid.UUID   `json:"user_id"`
	BeanType     string      `json:"bean_type"`
	Quantity     float64     `json:"quantity"`
	Temperature  float64     `json:"temperature"`
	Humidity     float64     `json:"humidity"`
	Status       StockStatus `json:"status"`
	Location     string      `json:"location"`
	AirCondition string      `json:"air_condition"`
	ActionTaken  *string     `json:"action_taken"`
	LastUpdated  time.Time   `json:"last_updated"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`

	// Owner is populated on display joins only; it is never written back.
	Owner *User `json:"user,omitempty"`
}
