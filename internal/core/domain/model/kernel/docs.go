// Package kernel provides core domain primitives shared across the shipment
// domain model.
//
// The package includes:
//   - TrackCode: the public, globally unique tracking identifier assigned to
//     every order at creation and used for unauthenticated lookup
//
// These primitives are immutable value objects; they validate their own
// construction so the rest of the domain can rely on them being well-formed.
package kernel
