// Package ports defines the contracts between the core and infrastructure
// adapters: repositories, the unit of work, and the opaque credential and
// token capabilities.
package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
// Email and username lookups are case-sensitive exact matches.
type UserRepository interface {
	// Add persists a new user. Returns user.ErrEmailTaken or
	// user.ErrUsernameTaken when a unique constraint rejects the insert.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByID retrieves a user by its unique identifier.
	GetByID(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByLogin retrieves a user whose email or username equals the
	// identifier. Returns errs.ObjectNotFoundError when no user matches.
	GetByLogin(ctx context.Context, identifier string) (*user.User, error)

	// ExistsByEmail reports whether a user with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByUsername reports whether a user with the username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
