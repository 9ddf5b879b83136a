package order

import (
	"errors"
	"fmt"

	"packtrack/internal/pkg/errs"
)

// Business-rule violations raised by the order lifecycle. Handlers map these
// to HTTP 400; all of them are recoverable by the caller.
var (
	// ErrUnknownStatus is returned when a status name is not in the registry.
	ErrUnknownStatus = errors.New("unknown order status")

	// ErrAlreadyDelivered is returned for any mutation attempted on a delivered order.
	ErrAlreadyDelivered = errors.New("order has already been delivered")

	// ErrAlreadyCanceled is returned for any mutation attempted on a canceled order.
	ErrAlreadyCanceled = errors.New("order is already canceled")

	// ErrNotCancelable is returned when cancellation is requested outside the Pending state.
	ErrNotCancelable = errors.New("order cannot be canceled in its current status")
)

// Status represents the lifecycle state of a shipment order.
// It implements a state machine with defined transitions so orders follow
// the correct business workflow.
//
// State transitions:
//
//	Pending ──┬──> In transit ──> Delivered
//	          │
//	          └──> Canceled
//
// Pending is the sole initial state. Delivered and Canceled are terminal:
// no further status change or field edit is permitted once reached.
// Cancellation is only permitted from Pending, the same guard that protects
// shipment-field updates.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly submitted order.
	// Shipment fields are editable and cancellation is possible only here.
	Pending

	// InTransit indicates the package has left the origin office.
	InTransit

	// Delivered indicates the package reached its recipient. Terminal.
	Delivered

	// Canceled indicates the order was withdrawn before dispatch. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their registry names.
// The names match the seeded order_statuses rows, including the space in
// "In transit".
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		InTransit: "In transit",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		InTransit: "In transit",
		Delivered: "Delivered",
		Canceled:  "Canceled",
	}
}

// AllStatuses enumerates the registry in stable identifier order.
// Used to seed the order_statuses table at startup.
func AllStatuses() []Status {
	return []Status{Pending, InTransit, Delivered, Canceled}
}

// StatusFromName resolves a registry name to its Status.
// Matching is exact; unknown names return ErrUnknownStatus. Business logic
// must go through this lookup rather than comparing raw integers.
func StatusFromName(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
}

// Validate checks that the Status is one of the registry values.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the registry name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Canceled
}

// EnsureMutable returns the terminal-state violation for Delivered or
// Canceled orders and nil otherwise. Every mutation path checks this first
// so a finished order can never change again.
func (s Status) EnsureMutable() error {
	switch s {
	case Delivered:
		return ErrAlreadyDelivered
	case Canceled:
		return ErrAlreadyCanceled
	default:
		return nil
	}
}

// EnsureCancelable reports whether cancellation may proceed from this status.
//
// Terminal states return their specific violation; any other non-Pending
// state returns ErrNotCancelable. Both the Cancel operation and a generic
// status change targeting Canceled use this single rule, keeping the cancel
// guard aligned with the shipment-field update guard.
func (s Status) EnsureCancelable() error {
	if err := s.EnsureMutable(); err != nil {
		return err
	}
	if s != Pending {
		return ErrNotCancelable
	}
	return nil
}

// TransitionTo validates a transition from the current status to target and
// returns the resulting status.
//
// Rules:
//   - the current status must not be terminal
//   - target must be a registry value
//   - a transition to Canceled additionally requires the current status to
//     be Pending
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if target == Canceled {
		if err := s.EnsureCancelable(); err != nil {
			return Unknown, err
		}
		return Canceled, nil
	}

	if err := s.EnsureMutable(); err != nil {
		return Unknown, err
	}

	return target, nil
}
