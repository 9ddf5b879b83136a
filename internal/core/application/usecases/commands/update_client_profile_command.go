package commands

import (
	"errors"

	"packtrack/internal/core/domain/model/client"
	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

var (
	ErrUpdateClientProfileCommandIsNotConstructed = errors.New(
		"UpdateClientProfileCommand must be created via NewUpdateClientProfileCommand constructor",
	)

	// ErrEmptyProfilePatch is returned when the request carries no editable
	// profile field.
	ErrEmptyProfilePatch = errors.New("no editable profile fields in update")
)

// UpdateClientProfileCommand represents an owner's request to edit their
// account profile. Password changes go through a separate flow and are
// never part of the patch.
type UpdateClientProfileCommand struct { //nolint:recvcheck //using for validation
	clientID uint64
	patch    client.ProfilePatch

	guard guard.ConstructorGuard
}

// NewUpdateClientProfileCommand creates a command to edit the profile of
// the authenticated client. Rejects patches that touch no field.
func NewUpdateClientProfileCommand(
	clientID uint64,
	patch client.ProfilePatch,
) (UpdateClientProfileCommand, error) {
	cmd := UpdateClientProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if clientID == 0 {
		return UpdateClientProfileCommand{}, errs.NewValueIsRequiredError("client id")
	}
	if patch.IsEmpty() {
		return UpdateClientProfileCommand{}, ErrEmptyProfilePatch
	}

	cmd.clientID = clientID
	cmd.patch = patch
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateClientProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientProfileCommandIsNotConstructed)
}

// ClientID returns the identifier of the account to edit.
func (c UpdateClientProfileCommand) ClientID() uint64 {
	return c.clientID
}

// Patch returns the partial profile update.
func (c UpdateClientProfileCommand) Patch() client.ProfilePatch {
	return c.patch
}
