package commands

import (
	"errors"

	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents an owner's request to withdraw an order.
// Cancellation is only possible while the order is still pending.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  uint64
	clientID uint64

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order on behalf of
// the owning client.
func NewCancelOrderCommand(orderID, clientID uint64) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() uint64 {
	return c.orderID
}

// ClientID returns the identifier of the requesting client.
func (c CancelOrderCommand) ClientID() uint64 {
	return c.clientID
}

func (c *CancelOrderCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *CancelOrderCommand) setClientID(clientID uint64) error {
	if clientID == 0 {
		return errs.NewValueIsRequiredError("client id")
	}

	c.clientID = clientID
	return nil
}
