package hasher

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/gatehouse/gatehouse/core"
	"github.com/gatehouse/gatehouse/ports"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 11

// bcrypt operates on at most 72 bytes of input
const maxPasswordLen = 72

// BcryptHasher implements the PasswordHasher port using bcrypt
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given work factor.
// A cost outside bcrypt's supported range falls back to DefaultCost.
func NewBcryptHasher(cost int) ports.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash generates a salted bcrypt hash of plaintext
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: empty password", core.ErrInvalidInput)
	}
	if len(plaintext) > maxPasswordLen {
		return "", fmt.Errorf("%w: password longer than %d bytes", core.ErrInvalidInput, maxPasswordLen)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hashed), nil
}

// Verify recomputes and compares in constant time. A mismatch is not an
// error; only an unrecognizable hash encoding is.
func (h *BcryptHasher) Verify(plaintext, hashed string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %v", core.ErrHashFormat, err)
}
