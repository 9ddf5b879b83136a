// Package client contains the Client aggregate: the registered account that
// owns shipment orders.
//
// Clients are identified by a store-assigned numeric id and carry two
// externally unique attributes, the email address and the national ID
// number. Profile fields are editable by the owner at any time; orders keep
// their own immutable sender snapshot, so edits here never rewrite history.
package client

import (
	"errors"
	"net/mail"

	"packtrack/internal/pkg/errs"
)

var (
	// ErrClientIsNotConstructed is returned when a Client instance was not
	// created through NewClient or RestoreClient.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")

	// ErrIDAlreadyAssigned is returned when the store tries to bind a
	// numeric id to a client that already has one.
	ErrIDAlreadyAssigned = errors.New("client id is already assigned")
)

// Client is the aggregate root of a customer account.
type Client struct {
	// id is the store-assigned numeric identifier; zero until persisted
	id uint64

	name         string
	lastname     string
	idNumber     string
	email        string
	passwordHash string
	phone        string

	// isConstructed ensures the client was created via a constructor
	isConstructed bool
}

// ProfilePatch is a partial update of the owner-editable profile fields.
// Nil pointers mean "leave unchanged". The password is changed through a
// separate credential flow, never via the profile.
type ProfilePatch struct {
	Name     *string
	Lastname *string
	IDNumber *string
	Email    *string
	Phone    *string
}

// IsEmpty reports whether the patch touches no profile field.
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Lastname == nil && p.IDNumber == nil && p.Email == nil && p.Phone == nil
}

// NewClient creates an account from registration input. The password must
// already be hashed; the aggregate never sees plaintext credentials.
func NewClient(name, lastname, idNumber, email, passwordHash, phone string) (*Client, error) {
	c := &Client{isConstructed: true}

	if err := errors.Join(
		c.setName(name),
		c.setLastname(lastname),
		c.setIDNumber(idNumber),
		c.setEmail(email),
		c.setPasswordHash(passwordHash),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a client from persistence.
func RestoreClient(id uint64, name, lastname, idNumber, email, passwordHash, phone string) (*Client, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("client id")
	}

	c, err := NewClient(name, lastname, idNumber, email, passwordHash, phone)
	if err != nil {
		return nil, err
	}

	c.id = id
	return c, nil
}

// Validate ensures the Client was created through a constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned numeric identifier, zero when unpersisted.
func (c *Client) ID() uint64 {
	return c.id
}

// Name returns the client's first name.
func (c *Client) Name() string {
	return c.name
}

// Lastname returns the client's last name.
func (c *Client) Lastname() string {
	return c.lastname
}

// IDNumber returns the national identification number.
func (c *Client) IDNumber() string {
	return c.idNumber
}

// Email returns the unique account email.
func (c *Client) Email() string {
	return c.email
}

// PasswordHash returns the stored credential hash.
func (c *Client) PasswordHash() string {
	return c.passwordHash
}

// Phone returns the contact phone number.
func (c *Client) Phone() string {
	return c.phone
}

// AssignID binds the store-generated numeric id to the aggregate.
// Called exactly once by the repository after a successful insert.
func (c *Client) AssignID(id uint64) error {
	if c.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("client id")
	}
	c.id = id
	return nil
}

// UpdateProfile applies a partial update of the editable profile fields.
// Profile edits are permitted at any time, independent of order state.
// On any error the client is left unchanged.
func (c *Client) UpdateProfile(patch ProfilePatch) error {
	updated := *c

	var err error
	if patch.Name != nil {
		err = errors.Join(err, updated.setName(*patch.Name))
	}
	if patch.Lastname != nil {
		err = errors.Join(err, updated.setLastname(*patch.Lastname))
	}
	if patch.IDNumber != nil {
		err = errors.Join(err, updated.setIDNumber(*patch.IDNumber))
	}
	if patch.Email != nil {
		err = errors.Join(err, updated.setEmail(*patch.Email))
	}
	if patch.Phone != nil {
		err = errors.Join(err, updated.setPhone(*patch.Phone))
	}
	if err != nil {
		return err
	}

	*c = updated
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setLastname(lastname string) error {
	if lastname == "" {
		return errs.NewValueIsRequiredError("lastname")
	}
	c.lastname = lastname
	return nil
}

func (c *Client) setIDNumber(idNumber string) error {
	if idNumber == "" {
		return errs.NewValueIsRequiredError("ID number")
	}
	c.idNumber = idNumber
	return nil
}

func (c *Client) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

func (c *Client) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	c.passwordHash = passwordHash
	return nil
}

func (c *Client) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
