package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/user"
	"pizzeria/internal/core/ports"
)

// SignUpCommandHandler handles account creation.
// Uniqueness is checked email first, then username, inside one transaction;
// the database unique constraints back the check against concurrent signups.
type SignUpCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewSignUpCommandHandler creates a handler for signup operations.
func NewSignUpCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the signup command and returns the created user.
// Returns user.ErrEmailTaken or user.ErrUsernameTaken on conflicts, in
// that order.
func (h *SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	emailTaken, err := userRepo.ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, user.ErrEmailTaken
	}

	usernameTaken, err := userRepo.ExistsByUsername(ctx, cmd.Username())
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, user.ErrUsernameTaken
	}

	newUser, err := user.NewUser(
		kernel.NewUUID(),
		cmd.Email(),
		cmd.Username(),
		passwordHash,
		cmd.IsActive(),
		cmd.IsStaff(),
	)
	if err != nil {
		return nil, err
	}

	if err = userRepo.Add(ctx, newUser); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newUser, nil
}
