package model

import "context"

// PasswordHasher produces and checks one-way salted password hashes.
type PasswordHasher interface {
	Hash(ctx context.Context, plaintext string) (string, error)
	Verify(ctx context.Context, plaintext, hash string) bool
}
