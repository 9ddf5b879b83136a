package commands

import (
	"errors"

	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents an owner's request to remove an order from
// their history. The row is soft-deleted and purged later by the retention
// job.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  uint64
	clientID uint64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order on behalf of
// the owning client.
func NewDeleteOrderCommand(orderID, clientID uint64) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() uint64 {
	return c.orderID
}

// ClientID returns the identifier of the requesting client.
func (c DeleteOrderCommand) ClientID() uint64 {
	return c.clientID
}

func (c *DeleteOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *DeleteOrderCommand) setClientID(clientID uint64) error {
	if clientID == 0 {
		return errs.NewValueIsRequiredError("client id")
	}

	c.clientID = clientID
	return nil
}
