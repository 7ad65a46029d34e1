// Package password is the one-way hashing boundary for account passwords.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and verifies salted bcrypt digests. The salt is embedded
// in the digest, so verification needs only the stored hash.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher with the given adaptive cost factor. Costs
// outside bcrypt's supported range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash derives a digest from the plaintext password.
func (h *Hasher) Hash(password string) ([]byte, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return digest, nil
}

// Compare reports whether the plaintext password matches the stored digest.
func (h *Hasher) Compare(digest []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(digest, []byte(password)) == nil
}
