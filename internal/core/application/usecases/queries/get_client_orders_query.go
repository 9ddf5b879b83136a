// Package queries contains read-only operations over the relational store.
// Queries bypass the aggregates and read projections straight from the
// database, the read side of the CQRS split.
package queries

import (
	"errors"
	"time"

	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

var ErrGetClientOrdersQueryIsNotConstructed = errors.New(
	"GetClientOrdersQuery must be created via NewGetClientOrdersQuery constructor",
)

// GetClientOrdersQuery retrieves the order history of one client.
// Owner-scoped: the client id comes from the authenticated request, so the
// result can never contain another owner's rows.
type GetClientOrdersQuery struct {
	clientID uint64

	guard guard.ConstructorGuard
}

// NewGetClientOrdersQuery creates a query for the given owner's orders.
func NewGetClientOrdersQuery(clientID uint64) (GetClientOrdersQuery, error) {
	if clientID == 0 {
		return GetClientOrdersQuery{}, errs.NewValueIsRequiredError("client id")
	}

	return GetClientOrdersQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientOrdersQueryIsNotConstructed)
}

// ClientID returns the owner whose orders are listed.
func (q GetClientOrdersQuery) ClientID() uint64 {
	return q.clientID
}

// ClientOrderRow is one order in the owner's history listing.
type ClientOrderRow struct {
	ID                      uint64
	TrackCode               string
	StatusName              string
	PackageType             string
	RecipientName           string
	DestinationDepartment   string
	DestinationMunicipality string
	DestinationAddress      string
	ClientName              string
	ClientEmail             string
	CreatedAt               time.Time
}
