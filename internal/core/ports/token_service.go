package ports

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
)

var (
	// ErrTokenInvalid is returned for a malformed token, a bad signature,
	// or a subject that cannot be resolved.
	ErrTokenInvalid = errors.New("could not validate credentials")

	// ErrTokenExpired is returned when the token's embedded expiry has passed.
	ErrTokenExpired = errors.New("token has expired")
)

// TokenService is the opaque signing capability: it issues and verifies
// signed, time-limited bearer tokens carrying a subject identity.
// Tokens are never persisted; there are no refresh or rotation semantics.
type TokenService interface {
	// Issue produces a signed token embedding the subject identity with an
	// absolute expiry of now plus the configured lifetime.
	Issue(subjectID kernel.UUID) (string, error)

	// Validate verifies the token and returns the embedded subject identity.
	// Returns ErrTokenExpired past the embedded expiry and ErrTokenInvalid
	// for any other verification failure.
	Validate(token string) (kernel.UUID, error)
}
