package queries

import (
	"errors"

	"packtrack/internal/pkg/errs"
	"packtrack/internal/pkg/guard"
)

var ErrGetClientProfileQueryIsNotConstructed = errors.New(
	"GetClientProfileQuery must be created via NewGetClientProfileQuery constructor",
)

// GetClientProfileQuery retrieves the authenticated client's profile together
// with a summary of their order history.
type GetClientProfileQuery struct {
	clientID uint64

	guard guard.ConstructorGuard
}

// NewGetClientProfileQuery creates a profile query for the given client.
func NewGetClientProfileQuery(clientID uint64) (GetClientProfileQuery, error) {
	if clientID == 0 {
		return GetClientProfileQuery{}, errs.NewValueIsRequiredError("client id")
	}

	return GetClientProfileQuery{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClientProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetClientProfileQueryIsNotConstructed)
}

// ClientID returns the profile owner.
func (q GetClientProfileQuery) ClientID() uint64 {
	return q.clientID
}

// OrderCount is the number of the owner's orders in one status.
type OrderCount struct {
	StatusName string
	Count      int64
}

// ClientProfile is the account view returned to its owner. The password
// hash never leaves the store through this projection.
type ClientProfile struct {
	ID          uint64
	Name        string
	Lastname    string
	IDNumber    string
	Email       string
	Phone       string
	TotalOrders int64
	OrderCounts []OrderCount
}
