package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher hashes and verifies passwords with a fixed bcrypt cost.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher builds a hasher, clamping the cost to bcrypt's bounds.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash produces a salted digest. The salt is randomized per call, so the
// same plaintext yields a different digest every time.
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether the plaintext matches the digest. Malformed or
// truncated digests count as a mismatch, never an error.
func (h *PasswordHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
