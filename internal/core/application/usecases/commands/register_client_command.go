package commands

import (
	"errors"

	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

const (
	minPasswordLength = 8
	// bcrypt truncates input beyond 72 bytes
	maxPasswordLength = 72
)

var ErrRegisterClientCommandIsNotConstructed = errors.New(
	"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
)

// RegisterClientCommand represents a request to create a new client account.
// Carries the plaintext password; hashing happens in the handler so the
// aggregate only ever stores the hash.
type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	name     string
	lastname string
	idNumber string
	email    string
	password string
	phone    string

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand creates a command to register a new client.
// All fields are required and the password must be at least eight characters.
func NewRegisterClientCommand(
	name, lastname, idNumber, email, password, phone string,
) (RegisterClientCommand, error) {
	cmd := RegisterClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		requireParam("name", name),
		requireParam("lastname", lastname),
		requireParam("ID number", idNumber),
		requireParam("email", email),
		requireParam("phone", phone),
		cmd.setPassword(password),
	); err != nil {
		return RegisterClientCommand{}, err
	}

	cmd.name = name
	cmd.lastname = lastname
	cmd.idNumber = idNumber
	cmd.email = email
	cmd.phone = phone
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

// Name returns the client's first name.
func (c RegisterClientCommand) Name() string {
	return c.name
}

// Lastname returns the client's last name.
func (c RegisterClientCommand) Lastname() string {
	return c.lastname
}

// IDNumber returns the national identification number.
func (c RegisterClientCommand) IDNumber() string {
	return c.idNumber
}

// Email returns the account email address.
func (c RegisterClientCommand) Email() string {
	return c.email
}

// Password returns the plaintext password supplied at registration.
func (c RegisterClientCommand) Password() string {
	return c.password
}

// Phone returns the contact phone number.
func (c RegisterClientCommand) Phone() string {
	return c.phone
}

func (c *RegisterClientCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return errs.NewValueIsOutOfRangeError(
			"password length", len(password), minPasswordLength, maxPasswordLength)
	}

	c.password = password
	return nil
}

func requireParam(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
