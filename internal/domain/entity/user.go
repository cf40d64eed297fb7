// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. It carries exactly one role,
// assigned at creation time. The password is stored only as a bcrypt hash.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleEntry is one row of the closed role catalog exposed to admins.
type RoleEntry struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Guard string `json:"guard"`
}
