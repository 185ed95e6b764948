package commands

import (
	"errors"

	"pizzeria/internal/pkg/guard"
)

var (
	ErrSignUpCommandIsNotConstructed = errors.New(
		"SignUpCommand must be created via NewSignUpCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// SignUpCommand represents a request to create a new account.
// The password travels in plain form only as far as the handler, which
// hashes it before anything touches persistence.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	email    string
	username string
	password string
	isActive bool
	isStaff  bool

	guard guard.ConstructorGuard
}

// NewSignUpCommand creates a signup command.
// Validates that email, username, and password are present.
func NewSignUpCommand(email, username, password string, isActive, isStaff bool) (SignUpCommand, error) {
	cmd := SignUpCommand{
		isActive: isActive,
		isStaff:  isStaff,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setUsername(username),
		cmd.setPassword(password),
	); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

// Email returns the requested email address.
func (c SignUpCommand) Email() string {
	return c.email
}

// Username returns the requested username.
func (c SignUpCommand) Username() string {
	return c.username
}

// Password returns the plain password to be hashed by the handler.
func (c SignUpCommand) Password() string {
	return c.password
}

// IsActive returns the requested active flag.
func (c SignUpCommand) IsActive() bool {
	return c.isActive
}

// IsStaff returns the requested administrator flag.
func (c SignUpCommand) IsStaff() bool {
	return c.isStaff
}

func (c *SignUpCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	c.email = email
	return nil
}

func (c *SignUpCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	c.username = username
	return nil
}

func (c *SignUpCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}
