package queries

import (
	"errors"
	"time"

	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves one order in full, scoped to its owner.
// A foreign order id yields not-found, the same answer as a missing one.
type GetOrderByIDQuery struct {
	orderID  uint64
	clientID uint64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a query for one of the owner's orders.
func NewGetOrderByIDQuery(orderID, clientID uint64) (GetOrderByIDQuery, error) {
	if orderID == 0 {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredError("order id")
	}
	if clientID == 0 {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredError("client id")
	}

	return GetOrderByIDQuery{
		orderID:  orderID,
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the requested order id.
func (q GetOrderByIDQuery) OrderID() uint64 {
	return q.orderID
}

// ClientID returns the requesting owner.
func (q GetOrderByIDQuery) ClientID() uint64 {
	return q.clientID
}

// OrderDetails is the full view of one order for its owner.
type OrderDetails struct {
	ID                      uint64
	TrackCode               string
	StatusName              string
	PackageType             string
	SenderName              string
	SenderLastname          string
	SenderPhone             string
	SenderEmail             string
	SenderDepartment        string
	SenderMunicipality      string
	SenderAddress           string
	RecipientName           string
	DestinationDepartment   string
	DestinationMunicipality string
	DestinationAddress      string
	CreatedAt               time.Time
}
