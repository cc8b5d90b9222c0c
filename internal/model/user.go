package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
	SetConfirmed(ctx context.Context, email string) error
}

// User represents a stored account. ID is zero until the store assigns it.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Confirmed    bool
	CreatedAt    time.Time
}

// Registration is the result of a successful sign up: the unconfirmed user
// and the token that confirms it.
type Registration struct {
	User              User
	ConfirmationToken string
}
