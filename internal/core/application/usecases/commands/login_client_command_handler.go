package commands

import (
	"context"
	"errors"

	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/pkg/auth"
	"packtrack/internal/pkg/errs"
)

// LoginClientCommandHandler authenticates clients by email and password.
// Token issuance stays in the transport layer; this handler only proves the
// credentials and returns the account.
type LoginClientCommandHandler struct {
	uowFactory ClientUoWFactory
	hasher     auth.PasswordHasher
}

// NewLoginClientCommandHandler creates a handler for client authentication.
func NewLoginClientCommandHandler(
	uowFactory ClientUoWFactory,
	hasher auth.PasswordHasher,
) LoginClientCommandHandler {
	return LoginClientCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle verifies the credentials and returns the matching account.
// Returns ErrInvalidCredentials for an unknown email as well as a wrong
// password.
func (h *LoginClientCommandHandler) Handle(
	ctx context.Context,
	cmd LoginClientCommand,
) (*client.Client, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.ClientRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err = h.hasher.Compare(aggregate.PasswordHash(), cmd.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
