package commands

import (
	"errors"

	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents an administrative request to move an
// order to another registry status, identified by its display name. The
// lifecycle rules still apply: terminal orders reject every transition and
// cancellation is only reachable from pending.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID uint64
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order to
// the status named statusName. Returns order.ErrUnknownStatus (wrapped) when
// the name does not match any registry entry.
func NewChangeOrderStatusCommand(orderID uint64, statusName string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(statusName),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() uint64 {
	return c.orderID
}

// Target returns the resolved target status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(statusName string) error {
	target, err := order.StatusFromName(statusName)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}
