package security

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

const maxBcryptPasswordBytes = 72

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// PasswordHasher hashes and verifies passwords with bcrypt. At most
// concurrency hash operations run at once; callers waiting for a slot give up
// when their context is cancelled.
type PasswordHasher struct {
	cost int
	gate *semaphore.Weighted
}

func NewPasswordHasher(cost int, concurrency int64) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if concurrency <= 0 {
		concurrency = int64(runtime.NumCPU())
	}
	return &PasswordHasher{cost: cost, gate: semaphore.NewWeighted(concurrency)}
}

func (h *PasswordHasher) Cost() int {
	return h.cost
}

func (h *PasswordHasher) Hash(ctx context.Context, password string) (string, error) {
	if len(password) > maxBcryptPasswordBytes {
		return "", ErrPasswordTooLong
	}
	if err := h.gate.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("acquire hash slot: %w", err)
	}
	defer h.gate.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches the stored bcrypt hash. A mismatch
// is (false, nil); a malformed hash or a cancelled wait is an error.
func (h *PasswordHasher) Verify(ctx context.Context, hash, password string) (bool, error) {
	if err := h.gate.Acquire(ctx, 1); err != nil {
		return false, fmt.Errorf("acquire hash slot: %w", err)
	}
	defer h.gate.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("verify password: %w", err)
	}
}
