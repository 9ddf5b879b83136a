package commands

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var (
	ErrLoginClientCommandIsNotConstructed = errors.New(
		"LoginClientCommand must be created via NewLoginClientCommand constructor",
	)

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so a login attempt cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// LoginClientCommand represents a credential check for an existing account.
type LoginClientCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginClientCommand creates a command to authenticate a client.
func NewLoginClientCommand(email, password string) (LoginClientCommand, error) {
	cmd := LoginClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireParam("email", email),
		requireParam("password", password),
	); err != nil {
		return LoginClientCommand{}, err
	}

	cmd.email = email
	cmd.password = password
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginClientCommand) Validate() error {
	return c.guard.Validate(ErrLoginClientCommandIsNotConstructed)
}

// Email returns the account email address.
func (c LoginClientCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to check.
func (c LoginClientCommand) Password() string {
	return c.password
}
