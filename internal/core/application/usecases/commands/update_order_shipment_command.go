package commands

import (
	"errors"

	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

var ErrUpdateOrderShipmentCommandIsNotConstructed = errors.New(
	"UpdateOrderShipmentCommand must be created via NewUpdateOrderShipmentCommand constructor",
)

// UpdateOrderShipmentCommand represents an owner's request to edit the
// destination details of a pending order. The patch carries only the
// editable shipment fields; anything else in the original request has
// already been filtered out by the transport layer.
type UpdateOrderShipmentCommand struct { //nolint:recvcheck //using for validation
	orderID  uint64
	clientID uint64
	patch    order.ShipmentPatch

	guard guard.ConstructorGuard
}

// NewUpdateOrderShipmentCommand creates a command to edit a pending order's
// shipment fields on behalf of the owning client.
func NewUpdateOrderShipmentCommand(
	orderID uint64,
	clientID uint64,
	patch order.ShipmentPatch,
) (UpdateOrderShipmentCommand, error) {
	cmd := UpdateOrderShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
	); err != nil {
		return UpdateOrderShipmentCommand{}, err
	}

	cmd.patch = patch
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderShipmentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderShipmentCommand) OrderID() uint64 {
	return c.orderID
}

// ClientID returns the identifier of the requesting client.
func (c UpdateOrderShipmentCommand) ClientID() uint64 {
	return c.clientID
}

// Patch returns the partial shipment update.
func (c UpdateOrderShipmentCommand) Patch() order.ShipmentPatch {
	return c.patch
}

func (c *UpdateOrderShipmentCommand) setOrderID(orderID uint64) error {
	if orderID == 0 {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderShipmentCommand) setClientID(clientID uint64) error {
	if clientID == 0 {
		return errs.NewValueIsRequiredError("client id")
	}

	c.clientID = clientID
	return nil
}
