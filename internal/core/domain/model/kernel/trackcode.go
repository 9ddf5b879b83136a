package kernel

import (
	"packtrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrTrackCodeIsNotConstructed indicates a TrackCode that was not created
// through one of the constructor functions. Returned when validating a
// zero-value TrackCode.
var ErrTrackCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackCode must be created via NewTrackCode or TrackCodeFromString",
)

// TrackCode is the public tracking identifier of an order: a random 128-bit
// value assigned once at creation, immutable for the lifetime of the order,
// and safe to hand to unauthenticated callers for shipment lookup.
//
// The zero value is invalid; use NewTrackCode or TrackCodeFromString.
// TrackCode is immutable and safe for concurrent use.
type TrackCode struct {
	id uuid.UUID
}

// NewTrackCode generates a fresh random tracking code (UUID version 4).
func NewTrackCode() TrackCode {
	return TrackCode{id: uuid.New()}
}

// TrackCodeFromString parses a tracking code from its textual form, as
// received from URLs or persistence. Returns a value-is-invalid error for
// anything that is not a syntactically valid UUID, which callers surface as
// a bad request without touching storage.
func TrackCodeFromString(s string) (TrackCode, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TrackCode{}, errs.NewValueIsInvalidErrorWithCause("track code", err)
	}
	code := TrackCode{id: id}
	if err = code.Validate(); err != nil {
		return TrackCode{}, err
	}
	return code, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (c TrackCode) String() string {
	return c.id.String()
}

// UUID exposes the underlying uuid.UUID for persistence adapters.
func (c TrackCode) UUID() uuid.UUID {
	return c.id
}

// IsEqual reports whether two tracking codes refer to the same shipment.
func (c TrackCode) IsEqual(other TrackCode) bool {
	return c.id == other.id
}

// Validate returns ErrTrackCodeIsNotConstructed for the zero value.
func (c TrackCode) Validate() error {
	if c.id == uuid.Nil {
		return ErrTrackCodeIsNotConstructed
	}
	return nil
}
