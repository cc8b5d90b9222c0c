package hasher

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	"github.com/MTomala-IT/storeapi/internal/model"
)

var _ model.PasswordHasher = (*Bcrypt)(nil)

// Bcrypt hashes passwords with bcrypt. The number of hashes computed at the
// same time is capped so that a burst of logins cannot take every CPU.
type Bcrypt struct {
	cost int
	sem  *semaphore.Weighted
}

// NewBcrypt creates a hasher. Cost outside bcrypt's range falls back to the
// default; maxConcurrent <= 0 means GOMAXPROCS.
func NewBcrypt(cost, maxConcurrent int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if maxConcurrent <= 0 {
		maxConcurrent = runtime.GOMAXPROCS(0)
	}
	return &Bcrypt{cost: cost, sem: semaphore.NewWeighted(int64(maxConcurrent))}
}

// Hash returns a salted bcrypt hash of plaintext.
func (b *Bcrypt) Hash(ctx context.Context, plaintext string) (string, error) {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("failed to wait for hashing slot: %w", err)
	}
	defer b.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. A malformed hash or a
// cancelled context is reported as a mismatch.
func (b *Bcrypt) Verify(ctx context.Context, plaintext, hash string) bool {
	if err := b.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer b.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
