// Package order contains the Order aggregate and its lifecycle rules.
//
// The aggregate enforces the shipment workflow: orders are created Pending
// with a fresh tracking code, destination fields may only change while
// Pending, cancellation is only possible from Pending, and the Delivered and
// Canceled states are terminal. The Status type doubles as the status
// registry, mapping stable integer identifiers to the seeded status names.
package order
