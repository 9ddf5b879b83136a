package commands

import (
	"context"
	"log/slog"
	"time"

	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/core/ports"
)

const notifyTimeout = 10 * time.Second

// CreateOrderCommandHandler handles the business logic for order submission.
// Creates new orders in the pending status with a freshly generated tracking
// code, then dispatches a confirmation notification after the commit.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order submission.
// Requires a UoWFactory spanning both aggregates because the owner is
// verified in the same transaction that stores the order.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger,
	}
}

// Handle processes the order submission command.
// Verifies the owning client exists, creates the order in pending status and
// persists it transactionally. The confirmation notification is fired on a
// separate goroutine after the commit; a notification failure is logged and
// never affects the created order.
func (h *CreateOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateOrderCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.ClientRepository().Get(ctx, cmd.ClientID())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(owner.ID(), cmd.Sender(), cmd.Shipment())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	go h.notify(aggregate)

	return aggregate, nil
}

func (h *CreateOrderCommandHandler) notify(aggregate *order.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()

	confirmation := ports.OrderConfirmation{
		RecipientEmail:     aggregate.Sender().Email,
		TrackCode:          aggregate.TrackCode().String(),
		PackageType:        aggregate.Shipment().PackageType.String(),
		RecipientName:      aggregate.Shipment().RecipientName,
		DestinationAddress: aggregate.Shipment().DestinationAddress,
	}

	if err := h.notifier.PublishOrderConfirmation(ctx, confirmation); err != nil {
		h.logger.Error("order confirmation notification failed",
			"track_code", confirmation.TrackCode,
			"error", err)
	}
}
