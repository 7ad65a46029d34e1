package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for user accounts.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
}

// User represents a stored account. Email is always lowercase,
// PasswordHash is a bcrypt digest and never leaves the server.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash []byte
	Name         string
	CreatedAt    time.Time
}
