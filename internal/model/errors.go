package model

import "errors"

var (
	ErrNotFound = errors.New("not found")

	ErrDuplicateUser      = errors.New("A user with that email already exists")
	ErrInvalidCredentials = errors.New("Could not validate credentials")
	ErrUnconfirmedAccount = errors.New("User has not confirmed email")
	ErrInvalidToken       = errors.New("Invalid token")
	ErrExpiredToken       = errors.New("Token has expired")
	ErrPostNotFound       = errors.New("Post not found")
)

// DetailError carries a caller-facing message while still matching its
// kind with errors.Is.
type DetailError struct {
	Kind   error
	Detail string
}

func (e *DetailError) Error() string {
	return e.Detail
}

func (e *DetailError) Unwrap() error {
	return e.Kind
}

// NewInvalidTokenError returns an ErrInvalidToken with a specific message.
func NewInvalidTokenError(detail string) error {
	return &DetailError{Kind: ErrInvalidToken, Detail: detail}
}

// NewInvalidCredentialsError returns an ErrInvalidCredentials with a specific message.
func NewInvalidCredentialsError(detail string) error {
	return &DetailError{Kind: ErrInvalidCredentials, Detail: detail}
}
