package commands

import (
	"context"

	"packtrack/internal/pkg/errs"
)

// UpdateOrderShipmentCommandHandler applies owner edits to a pending order.
// The order row is locked for the duration of the transaction so the
// pending-state check and the write are atomic.
type UpdateOrderShipmentCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderShipmentCommandHandler creates a handler for shipment edits.
func NewUpdateOrderShipmentCommandHandler(uowFactory OrderUoWFactory) UpdateOrderShipmentCommandHandler {
	return UpdateOrderShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment edit command.
// Loads the order under a row lock, verifies ownership and delegates the
// state and allow-list rules to the aggregate. A foreign order is reported
// as not found, never as forbidden, so the API does not leak which ids exist.
func (h *UpdateOrderShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateOrderShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if aggregate.ClientID() != cmd.ClientID() {
		return errs.NewObjectNotFoundError("order id", cmd.OrderID())
	}

	if err = aggregate.UpdateShipmentFields(cmd.Patch()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
