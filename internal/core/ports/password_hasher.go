package ports

// PasswordHasher is the opaque credential capability: a one-way transform
// for storing passwords and a verifier for login.
type PasswordHasher interface {
	// Hash produces a storable one-way hash of the password.
	Hash(password string) (string, error)

	// Verify reports whether the password matches the hash.
	// A mismatch is a false result, not an error.
	Verify(password, hash string) bool
}
