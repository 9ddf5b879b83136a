package queries

import (
	"errors"
	"time"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/pkg/guard"
)

var ErrTrackOrderByCodeQueryIsNotConstructed = errors.New(
	"TrackOrderByCodeQuery must be created via NewTrackOrderByCodeQuery constructor",
)

// TrackOrderByCodeQuery looks up an order by its public tracking code.
// Unauthenticated: the response is a projection safe to show anyone holding
// the code and carries no sender identity.
type TrackOrderByCodeQuery struct {
	code kernel.TrackCode

	guard guard.ConstructorGuard
}

// NewTrackOrderByCodeQuery creates a tracking query from the raw code string.
// A syntactically malformed code fails here with an invalid-value error, so
// the API answers 400 without touching the database.
func NewTrackOrderByCodeQuery(rawCode string) (TrackOrderByCodeQuery, error) {
	code, err := kernel.TrackCodeFromString(rawCode)
	if err != nil {
		return TrackOrderByCodeQuery{}, err
	}

	return TrackOrderByCodeQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderByCodeQueryIsNotConstructed)
}

// Code returns the parsed tracking code.
func (q TrackOrderByCodeQuery) Code() kernel.TrackCode {
	return q.code
}

// TrackingInfo is the public projection of an order's progress.
type TrackingInfo struct {
	TrackCode               string
	StatusName              string
	PackageType             string
	RecipientName           string
	DestinationDepartment   string
	DestinationMunicipality string
	DestinationAddress      string
	CreatedAt               time.Time
}
