package shipment

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
// created through one of the factory methods.
var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment represents a tracked package moving through intake, storage,
// picking, and dispatch. It is the aggregate root of the shipment ledger and
// the sole owner of its lifecycle state.
//
// Shipment follows these invariants:
//   - Must have a valid tracking identity
//   - Status changes only through explicit transition methods that validate
//     the current state
//   - The bin reference is set exactly while the shipment is stored
//     (putaway through pick) and cleared on dispatch or dissociation
//   - time_in is set at first registration, time_out at dispatch or pickup
type Shipment struct {
	trackingID  kernel.TrackingID
	warehouseID *kernel.UUID
	binID       *kernel.BinID
	operatorID  *kernel.UUID
	manifested  bool
	status      Status
	timeIn      time.Time
	timeOut     *time.Time

	isConstructed bool
}

// NewShipment creates a walk-in shipment in Unregistered status.
// warehouseID may be nil until the shipment is assigned to a bin.
func NewShipment(trackingID kernel.TrackingID, warehouseID *kernel.UUID, timeIn time.Time) (*Shipment, error) {
	s := &Shipment{
		status:        Unregistered,
		warehouseID:   warehouseID,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setTrackingID(trackingID),
		s.setTimeIn(timeIn),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// NewManifestedShipment creates a shipment announced by a manifest upload:
// status Manifested, manifested flag set, scoped to the uploading warehouse.
func NewManifestedShipment(trackingID kernel.TrackingID, warehouseID kernel.UUID, timeIn time.Time) (*Shipment, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	s, err := NewShipment(trackingID, &warehouseID, timeIn)
	if err != nil {
		return nil, err
	}

	s.status = Manifested
	s.manifested = true
	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistence.
func RestoreShipment(
	trackingID kernel.TrackingID,
	warehouseID *kernel.UUID,
	binID *kernel.BinID,
	operatorID *kernel.UUID,
	status Status,
	manifested bool,
	timeIn time.Time,
	timeOut *time.Time,
) (*Shipment, error) {
	s, err := NewShipment(trackingID, warehouseID, timeIn)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	s.binID = binID
	s.operatorID = operatorID
	s.status = status
	s.manifested = manifested
	s.timeOut = timeOut
	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by tracking identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.trackingID.IsEqual(other.trackingID)
}

// TrackingID returns the shipment's identity.
func (s *Shipment) TrackingID() kernel.TrackingID {
	return s.trackingID
}

// Warehouse returns the owning warehouse, or nil until assigned.
func (s *Shipment) Warehouse() *kernel.UUID {
	return s.warehouseID
}

// Bin returns the bin currently storing the shipment, or nil.
func (s *Shipment) Bin() *kernel.BinID {
	return s.binID
}

// Operator returns the assigned operator, or nil.
func (s *Shipment) Operator() *kernel.UUID {
	return s.operatorID
}

// Manifested reports whether the shipment was announced on a manifest.
func (s *Shipment) Manifested() bool {
	return s.manifested
}

// Status returns the shipment's current status.
func (s *Shipment) Status() Status {
	return s.status
}

// TimeIn returns the intake timestamp.
func (s *Shipment) TimeIn() time.Time {
	return s.timeIn
}

// TimeOut returns the dispatch/pickup timestamp, or nil while in the warehouse.
func (s *Shipment) TimeOut() *time.Time {
	return s.timeOut
}

// EnsureScopedTo verifies that the shipment belongs to the caller's warehouse.
// A shipment without a warehouse passes (it is claimed on assignment).
func (s *Shipment) EnsureScopedTo(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	if s.warehouseID != nil && !s.warehouseID.IsEqual(warehouseID) {
		return errs.NewCrossWarehouseError("shipment", s.trackingID.String(), s.warehouseID.String())
	}
	return nil
}

// Register marks the shipment as recorded at intake.
func (s *Shipment) Register() error {
	newStatus, err := s.status.Register()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Manifest records the shipment on a manifest for the given warehouse.
//
// Reconciliation is an overwrite: status, manifested flag, and warehouse are
// refreshed even when the shipment already exists, so a re-uploaded manifest
// always converges on the announced state.
func (s *Shipment) Manifest(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	s.status = Manifested
	s.manifested = true
	s.warehouseID = &warehouseID
	return nil
}

// AssignToBin stores the shipment in a bin, transitioning it to Putaway.
// The manifested flag is preserved; the shipment is claimed by the
// assigning warehouse if it had none.
func (s *Shipment) AssignToBin(binID kernel.BinID, warehouseID kernel.UUID) error {
	if err := binID.Validate(); err != nil {
		return err
	}
	if err := warehouseID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Putaway()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.binID = &binID
	s.warehouseID = &warehouseID
	return nil
}

// AssignOperator puts the shipment on an operator's picklist,
// transitioning it to PicklistCreated.
func (s *Shipment) AssignOperator(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.CreatePicklist()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.operatorID = &operatorID
	return nil
}

// Pick marks the shipment as physically retrieved by an operator.
// The scanned confirmation identifier must match the shipment's own tracking
// identifier; a mismatch (wrong item scanned) is rejected with a
// MismatchError and no state change.
func (s *Shipment) Pick(confirmation kernel.TrackingID) error {
	if err := confirmation.Validate(); err != nil {
		return err
	}

	if !s.trackingID.IsEqual(confirmation) {
		return NewMismatchError(s.trackingID.String(), confirmation.String())
	}

	newStatus, err := s.status.Pick()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Dispatch sends the shipment out of the warehouse: the bin reference is
// cleared and time_out recorded. A second dispatch fails because the source
// state no longer holds.
func (s *Shipment) Dispatch(now time.Time) error {
	newStatus, err := s.status.Dispatch()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.binID = nil
	s.timeOut = &now
	return nil
}

// Deliver marks a dispatched shipment as delivered.
func (s *Shipment) Deliver() error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Dissociate releases the shipment from its bin without the pick path,
// transitioning it to the terminal PickedUp status. The given bin must be
// the shipment's current bin; otherwise a MismatchError is returned and
// nothing changes.
func (s *Shipment) Dissociate(binID kernel.BinID, now time.Time) error {
	if err := binID.Validate(); err != nil {
		return err
	}

	if s.binID == nil || !s.binID.IsEqual(binID) {
		current := "none"
		if s.binID != nil {
			current = s.binID.String()
		}
		return NewMismatchError(current, binID.String())
	}

	newStatus, err := s.status.Release()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.binID = nil
	s.timeOut = &now
	return nil
}

func (s *Shipment) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	s.trackingID = trackingID
	return nil
}

func (s *Shipment) setTimeIn(timeIn time.Time) error {
	if timeIn.IsZero() {
		return errs.NewValueIsRequiredError("timeIn")
	}
	s.timeIn = timeIn
	return nil
}
