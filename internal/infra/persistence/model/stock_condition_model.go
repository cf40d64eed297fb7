package model

import (
	"time"

	"github.com/google/uuid"
)

// StockConditionModel mirrors the 'stock_conditions' table.
// last_updated is set by the application on every write; it is not the GORM
// row timestamp.
type StockConditionModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	BeanType     string    `gorm:"type:varchar(255);not null"`
	Quantity     float64   `gorm:"not null"`
	Temperature  float64   `gorm:"not null"`
	Humidity     float64   `gorm:"not null"`
	Status       string    `gorm:"type:varchar(20);not null"`
	Location     string    `gorm:"type:varchar(255);not null"`
	AirCondition string    `gorm:"type:varchar(255);not null"`
	ActionTaken  *string   `gorm:"type:text"`
	LastUpdated  time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (StockConditionModel) TableName() string {
	return "stock_conditions"
}
