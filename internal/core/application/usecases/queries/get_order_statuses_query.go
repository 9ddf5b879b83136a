package queries

import (
	"errors"

	"packtrack/internal/pkg/guard"
)

var ErrGetOrderStatusesQueryIsNotConstructed = errors.New(
	"GetOrderStatusesQuery must be created via NewGetOrderStatusesQuery constructor",
)

// GetOrderStatusesQuery lists the status registry. The registry is a closed
// set seeded at startup; this query exists so clients can render it without
// hardcoding names.
type GetOrderStatusesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrderStatusesQuery creates a query for the status registry listing.
func NewGetOrderStatusesQuery() GetOrderStatusesQuery {
	return GetOrderStatusesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusesQueryIsNotConstructed)
}

// StatusRow is one registry entry.
type StatusRow struct {
	ID   uint64
	Name string
}
