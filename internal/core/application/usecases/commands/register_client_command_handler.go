package commands

import (
	"context"

	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/pkg/auth"
	"packtrack/internal/pkg/errs"
)

// RegisterClientCommandHandler creates new client accounts.
// Checks email and ID-number uniqueness before inserting; the database
// unique indexes remain the backstop for concurrent registrations.
type RegisterClientCommandHandler struct {
	uowFactory ClientUoWFactory
	hasher     auth.PasswordHasher
}

// NewRegisterClientCommandHandler creates a handler for client registration.
func NewRegisterClientCommandHandler(
	uowFactory ClientUoWFactory,
	hasher auth.PasswordHasher,
) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command and returns the created account.
// Returns a ConflictError when the email or ID number is already taken.
func (h *RegisterClientCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterClientCommand,
) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := client.NewClient(
		cmd.Name(), cmd.Lastname(), cmd.IDNumber(), cmd.Email(), passwordHash, cmd.Phone())
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

	clientRepo := uow.ClientRepository()
	taken, err := clientRepo.ExistsByEmailOrIDNumber(ctx, cmd.Email(), cmd.IDNumber())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError("email or ID number is already registered")
	}

	if err = clientRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
