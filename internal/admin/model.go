package admin

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("admin account not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("admin account is inactive")
)

// Admin represents an admin console account. Public site visitors have
// no accounts at all; only console operators are stored here.
type Admin struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	DisplayName  *string
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
