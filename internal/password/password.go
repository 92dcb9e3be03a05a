// Package password hashes and verifies user secrets with bcrypt.
package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher produces salted bcrypt hashes at a fixed work factor.
type Hasher struct {
	cost int
}

// New returns a Hasher using cost; values below bcrypt.MinCost use bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Cost reports the work factor in use.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a new salted hash of plaintext; two calls never return the same value.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches hash. Malformed hashes never match.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
