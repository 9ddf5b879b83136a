package ports

import (
	"context"
	"time"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// All reads reflect the latest committed write; the lifecycle engine relies
// on this when it checks state before mutating.
type OrderRepository interface {
	// Add persists a new order aggregate and binds the store-generated
	// numeric id to it. On a tracking-code collision the implementation
	// regenerates the code and retries, so a successful Add always leaves
	// the aggregate with a unique code.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its numeric id.
	Get(ctx context.Context, id uint64) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row for the duration
	// of the surrounding transaction. Lifecycle mutations load through
	// this so that check-then-set is atomic with respect to the write.
	GetForUpdate(ctx context.Context, id uint64) (*order.Order, error)

	// GetByTrackCode retrieves an order by its public tracking code.
	GetByTrackCode(ctx context.Context, code kernel.TrackCode) (*order.Order, error)

	// GetAllByClient retrieves all orders owned by the given client,
	// newest first.
	GetAllByClient(ctx context.Context, clientID uint64) ([]*order.Order, error)

	// Delete soft-deletes an order by id. Deleted orders disappear from
	// every read path; rows are purged later by the retention job.
	Delete(ctx context.Context, id uint64) error

	// PurgeDeletedBefore permanently removes orders soft-deleted before
	// the cutoff. Returns the number of rows removed.
	PurgeDeletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
