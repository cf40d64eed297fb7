package model

import (
	"time"

	"github.com/google/uuid"
)

// AccessTokenModel mirrors the 'access_tokens' table. The ID is the token's
// jti claim, generated by the token service, so there is no column default.
type AccessTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (AccessTokenModel) TableName() string {
	return "access_tokens"
}
