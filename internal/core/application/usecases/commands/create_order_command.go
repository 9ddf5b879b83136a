package commands

import (
	"errors"

	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to submit a new shipment order.
// Carries the owning client reference, the sender snapshot taken from the
// request, and the destination shipment details.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(clientID, sender, shipment)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier, logger)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", created.TrackCode())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientID uint64
	sender   order.Sender
	shipment order.Shipment

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to submit a new shipment order.
// Validates that the client reference is set and the sender snapshot and
// shipment details are complete. Returns an error if any validation fails.
func NewCreateOrderCommand(
	clientID uint64,
	sender order.Sender,
	shipment order.Shipment,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setClientID(clientID),
		orderCommand.setSender(sender),
		orderCommand.setShipment(shipment),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientID returns the identifier of the submitting client.
func (c CreateOrderCommand) ClientID() uint64 {
	return c.clientID
}

// Sender returns the sender snapshot captured from the request.
func (c CreateOrderCommand) Sender() order.Sender {
	return c.sender
}

// Shipment returns the destination details of the new order.
func (c CreateOrderCommand) Shipment() order.Shipment {
	return c.shipment
}

func (c *CreateOrderCommand) setClientID(clientID uint64) error {
	if clientID == 0 {
		return errs.NewValueIsRequiredError("client id")
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setSender(sender order.Sender) error {
	if err := sender.Validate(); err != nil {
		return err
	}

	c.sender = sender
	return nil
}

func (c *CreateOrderCommand) setShipment(shipment order.Shipment) error {
	if err := shipment.Validate(); err != nil {
		return err
	}

	c.shipment = shipment
	return nil
}
