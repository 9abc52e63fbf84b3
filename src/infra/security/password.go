// Package security holds credential helpers.
package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"shootfed/src/core/domain"
	"shootfed/src/core/ports"
)

// DefaultCost is the bcrypt work factor used for new hashes.
const DefaultCost = 12

// BcryptHasher implements ports.PasswordHasher.
type BcryptHasher struct {
	cost int
}

var _ ports.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher returns a hasher with the given cost, or DefaultCost when cost is out of range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password. Passwords longer than bcrypt's
// 72-byte input are a validation error on "password".
func (h *BcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewValidationError("password", "must be at most 72 bytes")
	}
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
