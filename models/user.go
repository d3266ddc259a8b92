package models

import (
	"time"

	"siparis/domain/core"
)

// User represents a customer who places orders
type User struct {
	ID        core.UserID `json:"id" db:"id"`
	Email     string      `json:"email" db:"email"`
	Username  string      `json:"username" db:"username"`
	Role      string      `json:"role" db:"role"`
	IsActive  bool        `json:"is_active" db:"is_active"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// DisplayName returns the name used in greetings
func (u *User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}
