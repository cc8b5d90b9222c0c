package model

import "time"

// TokenPurpose tags a token so that one kind cannot be used in place of another.
type TokenPurpose string

const (
	TokenPurposeAccess       TokenPurpose = "access"
	TokenPurposeConfirmation TokenPurpose = "confirmation"
)

// TokenManager issues and validates signed, expiring tokens.
type TokenManager interface {
	Issue(subject string, purpose TokenPurpose, ttl time.Duration) (string, error)
	ExtractSubject(token string, expected TokenPurpose) (string, error)
}
