package order

import (
	"errors"
	"time"

	"packtrack/internal/core/domain/model/kernel"
	"packtrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderNotPending is returned when a shipment-field update is
	// attempted outside the Pending state.
	ErrOrderNotPending = errors.New("order is not pending")

	// ErrNoEffectiveChange is returned when an update patch contains no
	// editable shipment field after allow-list filtering.
	ErrNoEffectiveChange = errors.New("no editable shipment fields in update")

	// ErrIDAlreadyAssigned is returned when the store tries to bind a
	// numeric id to an order that already has one. Ids are never reused.
	ErrIDAlreadyAssigned = errors.New("order id is already assigned")

	// ErrOrderAlreadyPersisted is returned when a tracking code
	// regeneration is attempted after the order has been stored.
	ErrOrderAlreadyPersisted = errors.New("order is already persisted")
)

// Sender is the snapshot of the sending client taken at submission time.
// It describes the sender as of that moment and is immutable thereafter,
// independent of later profile edits on the client record.
type Sender struct {
	Name         string
	Lastname     string
	IDNumber     string
	Department   string
	Municipality string
	Address      string
	Phone        string
	Email        string
}

// Validate checks that every sender field is present.
func (s Sender) Validate() error {
	return errors.Join(
		requireField("sender name", s.Name),
		requireField("sender lastname", s.Lastname),
		requireField("sender ID number", s.IDNumber),
		requireField("sender department", s.Department),
		requireField("sender municipality", s.Municipality),
		requireField("sender address", s.Address),
		requireField("sender phone", s.Phone),
		requireField("sender email", s.Email),
	)
}

// Shipment holds the destination details of an order. These are the only
// fields a client may still edit, and only while the order is Pending.
type Shipment struct {
	PackageType             PackageType
	DestinationDepartment   string
	DestinationMunicipality string
	RecipientName           string
	DestinationAddress      string
}

// Validate checks that the shipment is complete and the package type is known.
func (s Shipment) Validate() error {
	return errors.Join(
		s.PackageType.Validate(),
		requireField("destination department", s.DestinationDepartment),
		requireField("destination municipality", s.DestinationMunicipality),
		requireField("recipient name", s.RecipientName),
		requireField("destination address", s.DestinationAddress),
	)
}

// ShipmentPatch is a partial update of the editable shipment fields.
// Nil pointers mean "leave unchanged". Callers build patches from the
// allow-listed request keys only; anything else is dropped before it
// reaches the domain, not rejected.
type ShipmentPatch struct {
	PackageType             *string
	DestinationDepartment   *string
	DestinationMunicipality *string
	RecipientName           *string
	DestinationAddress      *string
}

// IsEmpty reports whether the patch touches no shipment field.
func (p ShipmentPatch) IsEmpty() bool {
	return p.PackageType == nil &&
		p.DestinationDepartment == nil &&
		p.DestinationMunicipality == nil &&
		p.RecipientName == nil &&
		p.DestinationAddress == nil
}

// Order is the aggregate root of a shipment request. It owns the lifecycle
// from submission (Pending) through In transit to the terminal Delivered or
// Canceled states, and guards which fields may change in which state.
//
// Order maintains these invariants:
//   - exactly one current status drawn from the registry
//   - the tracking code is assigned at construction and never changes after
//     the order is persisted
//   - the owner reference never changes after creation
//   - the sender snapshot never changes after creation
//   - shipment fields are mutable only while Pending
//   - Delivered and Canceled permit no further mutation of any kind
type Order struct {
	// id is the store-assigned numeric identifier; zero until persisted
	id uint64

	// trackCode is the public tracking identifier
	trackCode kernel.TrackCode

	// clientID references the owning client
	clientID uint64

	// sender is the immutable snapshot of the sending client
	sender Sender

	// shipment holds the editable destination details
	shipment Shipment

	// status is the current state in the order lifecycle
	status Status

	// createdAt is set once at construction
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new order in the Pending state with a freshly generated
// tracking code. The numeric id stays zero until the store assigns one.
//
// Returns a validation error when the owner reference is missing, the sender
// snapshot is incomplete, or the shipment details are invalid.
func NewOrder(clientID uint64, sender Sender, shipment Shipment) (*Order, error) {
	if clientID == 0 {
		return nil, errs.NewValueIsRequiredError("client id")
	}
	if err := errors.Join(sender.Validate(), shipment.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		trackCode:     kernel.NewTrackCode(),
		clientID:      clientID,
		sender:        sender,
		shipment:      shipment,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. All invariants are
// re-checked so corrupt rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id uint64,
	trackCode kernel.TrackCode,
	clientID uint64,
	sender Sender,
	shipment Shipment,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if id == 0 {
		return nil, errs.NewValueIsRequiredError("order id")
	}
	if clientID == 0 {
		return nil, errs.NewValueIsRequiredError("client id")
	}
	if err := errors.Join(
		trackCode.Validate(),
		status.Validate(),
		sender.Validate(),
		shipment.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		trackCode:     trackCode,
		clientID:      clientID,
		sender:        sender,
		shipment:      shipment,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned numeric identifier, zero when unpersisted.
func (o *Order) ID() uint64 {
	return o.id
}

// TrackCode returns the public tracking identifier.
func (o *Order) TrackCode() kernel.TrackCode {
	return o.trackCode
}

// ClientID returns the owning client's identifier.
func (o *Order) ClientID() uint64 {
	return o.clientID
}

// Sender returns the sender snapshot captured at submission.
func (o *Order) Sender() Sender {
	return o.sender
}

// Shipment returns the current destination details.
func (o *Order) Shipment() Shipment {
	return o.shipment
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the submission timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AssignID binds the store-generated numeric id to the aggregate.
// Called exactly once by the repository after a successful insert.
func (o *Order) AssignID(id uint64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id == 0 {
		return errs.NewValueIsRequiredError("order id")
	}
	o.id = id
	return nil
}

// RegenerateTrackCode replaces the tracking code with a fresh one.
// Only legal before the order has been persisted; the store uses it to
// retry an insert that collided on the tracking-code unique index. Once an
// order has an id, its code is immutable.
func (o *Order) RegenerateTrackCode() error {
	if o.id != 0 {
		return ErrOrderAlreadyPersisted
	}
	o.trackCode = kernel.NewTrackCode()
	return nil
}

// UpdateShipmentFields applies a partial update of the editable shipment
// fields.
//
// Business rules:
//   - permitted only while the order is Pending (ErrOrderNotPending)
//   - an empty patch, i.e. one that survived allow-list filtering with no
//     field set, fails with ErrNoEffectiveChange
//   - supplied values must themselves be valid (known package type,
//     non-blank strings)
//
// On any error the order is left unchanged.
func (o *Order) UpdateShipmentFields(patch ShipmentPatch) error {
	if o.status != Pending {
		return ErrOrderNotPending
	}
	if patch.IsEmpty() {
		return ErrNoEffectiveChange
	}

	updated := o.shipment
	if patch.PackageType != nil {
		packageType, err := ParsePackageType(*patch.PackageType)
		if err != nil {
			return err
		}
		updated.PackageType = packageType
	}
	if patch.DestinationDepartment != nil {
		updated.DestinationDepartment = *patch.DestinationDepartment
	}
	if patch.DestinationMunicipality != nil {
		updated.DestinationMunicipality = *patch.DestinationMunicipality
	}
	if patch.RecipientName != nil {
		updated.RecipientName = *patch.RecipientName
	}
	if patch.DestinationAddress != nil {
		updated.DestinationAddress = *patch.DestinationAddress
	}

	if err := updated.Validate(); err != nil {
		return err
	}

	o.shipment = updated
	return nil
}

// Cancel withdraws the order.
//
// Fails with ErrAlreadyDelivered or ErrAlreadyCanceled in terminal states
// and with ErrNotCancelable from any other non-Pending state; see
// Status.EnsureCancelable for the single cancellation rule.
func (o *Order) Cancel() error {
	if err := o.status.EnsureCancelable(); err != nil {
		return err
	}
	o.status = Canceled
	return nil
}

// ChangeStatus performs an administrative transition to an arbitrary
// registry status, subject to the lifecycle rules in Status.TransitionTo.
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
