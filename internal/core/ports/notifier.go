package ports

import "context"

// OrderConfirmation carries the details of a freshly created order for the
// confirmation message sent to the sender.
type OrderConfirmation struct {
	RecipientEmail     string
	TrackCode          string
	PackageType        string
	RecipientName      string
	DestinationAddress string
}

// Notifier dispatches best-effort notifications to external channels.
// Callers fire it after the order is committed and only log failures; a
// broken notifier never fails or rolls back the primary operation.
type Notifier interface {
	PublishOrderConfirmation(ctx context.Context, confirmation OrderConfirmation) error
}
