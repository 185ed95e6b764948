// Package bcrypthash implements password hashing with bcrypt.
package bcrypthash

import "golang.org/x/crypto/bcrypt"

// Hasher implements ports.PasswordHasher using bcrypt with the default cost.
type Hasher struct {
	cost int
}

// NewHasher creates a bcrypt hasher with the default cost.
func NewHasher() Hasher {
	return Hasher{cost: bcrypt.DefaultCost}
}

// Hash produces a bcrypt hash of the password. The salt is embedded in the
// returned string.
func (h Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether the password matches the hash.
func (h Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
