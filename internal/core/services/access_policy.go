package services

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrBadCredentials is returned when the password does not match.
	// The message deliberately matches the not-found case so login does not
	// reveal which part of the credential was wrong.
	ErrBadCredentials = errors.New("incorrect email/username or password")

	// ErrInactiveUser is returned when a deactivated account authenticates
	// with otherwise correct credentials.
	ErrInactiveUser = errors.New("inactive user")

	// ErrNotStaff is returned when an administrator-only capability is
	// requested by an ordinary user.
	ErrNotStaff = errors.New("superuser privileges required")
)

// UserReader is the read-side subset of the user repository needed to
// resolve identities. Lookups run outside any transaction.
type UserReader interface {
	GetByID(ctx context.Context, id kernel.UUID) (*user.User, error)
	GetByLogin(ctx context.Context, identifier string) (*user.User, error)
}

// AccessPolicy resolves acting identities and decides between ordinary-user
// and administrator capability. It combines the user directory with the
// opaque credential and token capabilities; it holds no state of its own.
type AccessPolicy struct {
	users  UserReader
	hasher ports.PasswordHasher
	tokens ports.TokenService
}

// NewAccessPolicy creates an access policy over the given collaborators.
func NewAccessPolicy(users UserReader, hasher ports.PasswordHasher, tokens ports.TokenService) *AccessPolicy {
	return &AccessPolicy{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Authenticate checks a login credential. The identifier matches either the
// email or the username (exact, case-sensitive). Returns
// errs.ObjectNotFoundError when no user matches, ErrBadCredentials on a
// password mismatch, and ErrInactiveUser for deactivated accounts.
// On success the caller issues a token for the returned user.
func (p *AccessPolicy) Authenticate(ctx context.Context, identifier, password string) (*user.User, error) {
	u, err := p.users.GetByLogin(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if !p.hasher.Verify(password, u.PasswordHash()) {
		return nil, ErrBadCredentials
	}

	if !u.IsActive() {
		return nil, ErrInactiveUser
	}

	return u, nil
}

// RequireUser validates a bearer token and resolves its subject to a user.
// Token validation errors pass through; a subject that no longer exists is
// reported as ports.ErrTokenInvalid.
func (p *AccessPolicy) RequireUser(ctx context.Context, token string) (*user.User, error) {
	subjectID, err := p.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	u, err := p.users.GetByID(ctx, subjectID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ports.ErrTokenInvalid
		}
		return nil, err
	}

	return u, nil
}

// RequireAdmin is RequireUser plus the staff check.
// Returns ErrNotStaff when the resolved user lacks administrator privileges.
func (p *AccessPolicy) RequireAdmin(ctx context.Context, token string) (*user.User, error) {
	u, err := p.RequireUser(ctx, token)
	if err != nil {
		return nil, err
	}

	if !u.IsStaff() {
		return nil, ErrNotStaff
	}

	return u, nil
}
