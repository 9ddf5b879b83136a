package commands

import (
	"context"

	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/pkg/errs"
)

// UpdateClientProfileCommandHandler applies profile edits to an account.
// Changing the email or ID number can collide with another account; the
// unique indexes surface that as a ConflictError from the repository.
type UpdateClientProfileCommandHandler struct {
	uowFactory ClientUoWFactory
}

// NewUpdateClientProfileCommandHandler creates a handler for profile edits.
func NewUpdateClientProfileCommandHandler(uowFactory ClientUoWFactory) UpdateClientProfileCommandHandler {
	return UpdateClientProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the profile edit command and returns the updated account.
func (h *UpdateClientProfileCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateClientProfileCommand,
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

	clientRepo := uow.ClientRepository()
	aggregate, err := clientRepo.Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	if newEmail := cmd.Patch().Email; newEmail != nil && *newEmail != aggregate.Email() {
		taken, existsErr := clientRepo.ExistsByEmailOrIDNumber(ctx, *newEmail, "")
		if existsErr != nil {
			return nil, existsErr
		}
		if taken {
			return nil, errs.NewConflictError("email is already registered")
		}
	}

	if err = aggregate.UpdateProfile(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = clientRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
