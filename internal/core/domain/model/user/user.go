package user

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrEmailTaken is returned on signup when another user already holds the email.
	ErrEmailTaken = errors.New("user with the email already exists")

	// ErrUsernameTaken is returned on signup when another user already holds the username.
	ErrUsernameTaken = errors.New("user with the username already exists")
)

// User is the aggregate root for an account identity.
//
// Invariants:
//   - email and username are non-empty and unique across all users
//     (uniqueness is backed by database constraints)
//   - only the bcrypt hash of the password is ever stored
//
// Matching on email and username is case-sensitive exact match.
type User struct {
	id           kernel.UUID
	email        string
	username     string
	passwordHash string
	isActive     bool
	isStaff      bool

	isConstructed bool
}

// NewUser creates a user at signup time. The passwordHash must already be
// the output of the credential hasher; raw passwords never reach the domain.
func NewUser(id kernel.UUID, email, username, passwordHash string, isActive, isStaff bool) (*User, error) {
	user := &User{
		isActive:      isActive,
		isStaff:       isStaff,
		isConstructed: true,
	}

	if err := errors.Join(
		user.setID(id),
		user.setEmail(email),
		user.setUsername(username),
		user.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return user, nil
}

// RestoreUser reconstructs a user from persistence.
func RestoreUser(id kernel.UUID, email, username, passwordHash string, isActive, isStaff bool) (*User, error) {
	return NewUser(id, email, username, passwordHash, isActive, isStaff)
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}

	return nil
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the user's unique email address.
func (u *User) Email() string {
	return u.email
}

// Username returns the user's unique username.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// IsActive reports whether the account may log in.
func (u *User) IsActive() bool {
	return u.isActive
}

// IsStaff reports whether the user has administrator privileges
// over all orders.
func (u *User) IsStaff() bool {
	return u.isStaff
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password_hash")
	}
	u.passwordHash = passwordHash
	return nil
}
