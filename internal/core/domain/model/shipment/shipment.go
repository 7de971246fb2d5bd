package shipment

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// MaxStops is the maximum number of intermediate stops a shipment may carry
// between its origin and destination.
const MaxStops = 3

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrWeightMustBePositive is returned when the cargo weight is zero or negative.
	ErrWeightMustBePositive = errs.NewValueIsInvalidError("weight must be greater than 0")
	// ErrPickupAtIsRequired is returned when the pickup date/time is missing.
	ErrPickupAtIsRequired = errs.NewValueIsRequiredError("pickupAt")
	// ErrTooManyStops is returned when adding a stop beyond MaxStops.
	ErrTooManyStops = errs.NewValueIsOutOfRangeError("stops", MaxStops+1, 0, MaxStops)
	// ErrStopIndexOutOfRange is returned when resolving a stop that does not exist.
	ErrStopIndexOutOfRange = errs.NewValueIsInvalidError("stop index")
)

// Shipment is the aggregate root for a cargo owner's freight request.
//
// Invariants:
//   - id and owner id are valid UUIDs
//   - origin, destination, weight, and pickup date/time are set at creation
//   - weight is strictly positive
//   - at most MaxStops intermediate stops
//   - status changes only through the transition methods
//
// Optional cargo details (cargo type, dimensions, vehicle and body type
// requirements, observations) may be attached after construction and carry
// no lifecycle semantics.
type Shipment struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	status      Status
	origin      Waypoint
	destination Waypoint
	stops       []Waypoint
	cargoType   string
	weightKg    float64
	dimensions  string
	vehicleType string
	bodyType    string
	pickupAt    time.Time
	observation string

	guard guard.ConstructorGuard
}

// NewShipment creates a shipment in Requested status. Origin, destination,
// a positive weight, and the pickup date/time are mandatory.
func NewShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	origin Waypoint,
	destination Waypoint,
	weightKg float64,
	pickupAt time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status: Requested,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setOrigin(origin),
		s.setDestination(destination),
		s.setWeightKg(weightKg),
		s.setPickupAt(pickupAt),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a shipment from persistence, bypassing the
// creation-time defaults but re-validating every invariant.
func RestoreShipment(
	id kernel.UUID,
	ownerID kernel.UUID,
	status Status,
	origin Waypoint,
	destination Waypoint,
	stops []Waypoint,
	weightKg float64,
	pickupAt time.Time,
) (*Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if len(stops) > MaxStops {
		return nil, ErrTooManyStops
	}

	s, err := NewShipment(id, ownerID, origin, destination, weightKg, pickupAt)
	if err != nil {
		return nil, err
	}

	s.status = status
	for _, stop := range stops {
		if stopErr := stop.Validate(); stopErr != nil {
			return nil, stopErr
		}
	}
	s.stops = append(s.stops, stops...)

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OwnerID returns the cargo owner's user id.
func (s *Shipment) OwnerID() kernel.UUID {
	return s.ownerID
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Origin returns the pickup waypoint.
func (s *Shipment) Origin() Waypoint {
	return s.origin
}

// Destination returns the delivery waypoint.
func (s *Shipment) Destination() Waypoint {
	return s.destination
}

// Stops returns the intermediate stops in route order.
func (s *Shipment) Stops() []Waypoint {
	stops := make([]Waypoint, len(s.stops))
	copy(stops, s.stops)
	return stops
}

// WeightKg returns the cargo weight in kilograms.
func (s *Shipment) WeightKg() float64 {
	return s.weightKg
}

// PickupAt returns the requested pickup date/time.
func (s *Shipment) PickupAt() time.Time {
	return s.pickupAt
}

// CargoType returns the declared cargo type.
func (s *Shipment) CargoType() string { return s.cargoType }

// Dimensions returns the declared cargo dimensions.
func (s *Shipment) Dimensions() string { return s.dimensions }

// VehicleType returns the required vehicle type.
func (s *Shipment) VehicleType() string { return s.vehicleType }

// BodyType returns the required body type.
func (s *Shipment) BodyType() string { return s.bodyType }

// Observations returns the free-text notes.
func (s *Shipment) Observations() string { return s.observation }

// SetCargo attaches the optional cargo details.
func (s *Shipment) SetCargo(cargoType, dimensions, vehicleType, bodyType string) {
	s.cargoType = cargoType
	s.dimensions = dimensions
	s.vehicleType = vehicleType
	s.bodyType = bodyType
}

// SetObservations attaches free-text notes.
func (s *Shipment) SetObservations(observations string) {
	s.observation = observations
}

// AddStop appends an intermediate stop, capped at MaxStops.
func (s *Shipment) AddStop(stop Waypoint) error {
	if err := stop.Validate(); err != nil {
		return err
	}
	if len(s.stops) >= MaxStops {
		return ErrTooManyStops
	}

	s.stops = append(s.stops, stop)
	return nil
}

// ResolveOrigin attaches geocoordinates to the origin address.
func (s *Shipment) ResolveOrigin(point kernel.GeoPoint) error {
	resolved, err := s.origin.Resolved(point)
	if err != nil {
		return err
	}
	s.origin = resolved
	return nil
}

// ResolveDestination attaches geocoordinates to the destination address.
func (s *Shipment) ResolveDestination(point kernel.GeoPoint) error {
	resolved, err := s.destination.Resolved(point)
	if err != nil {
		return err
	}
	s.destination = resolved
	return nil
}

// ResolveStop attaches geocoordinates to the stop at the given index.
func (s *Shipment) ResolveStop(index int, point kernel.GeoPoint) error {
	if index < 0 || index >= len(s.stops) {
		return ErrStopIndexOutOfRange
	}
	resolved, err := s.stops[index].Resolved(point)
	if err != nil {
		return err
	}
	s.stops[index] = resolved
	return nil
}

// RouteDistanceKm returns the estimated route distance: the sum of
// great-circle distances over origin, resolved stops, and destination in
// route order. Unresolved stops are skipped. The distance is unknown
// (ok == false) until both origin and destination have coordinates.
func (s *Shipment) RouteDistanceKm() (distance float64, ok bool, err error) {
	if !s.origin.IsResolved() || !s.destination.IsResolved() {
		return 0, false, nil
	}

	route := make([]kernel.GeoPoint, 0, len(s.stops)+2)
	route = append(route, *s.origin.Point())
	for _, stop := range s.stops {
		if stop.IsResolved() {
			route = append(route, *stop.Point())
		}
	}
	route = append(route, *s.destination.Point())

	distance, err = kernel.RouteDistanceKm(route)
	if err != nil {
		return 0, false, err
	}
	return distance, true, nil
}

// ReceiveQuote records that a quote arrived, opening the shipment for
// acceptance. Requested becomes Available; further quotes leave the status
// untouched.
func (s *Shipment) ReceiveQuote() error {
	newStatus, err := s.status.ReceiveQuote()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Start moves the shipment to InProgress. The cross-aggregate guard (the
// caller holds the accepted quote) is enforced by services.TripAuthorizer
// before this is called.
func (s *Shipment) Start() error {
	newStatus, err := s.status.Start()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Complete moves the shipment to Completed. Only valid from InProgress.
func (s *Shipment) Complete() error {
	newStatus, err := s.status.Complete()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Cancel moves the shipment to Cancelled from any non-terminal status.
func (s *Shipment) Cancel() error {
	newStatus, err := s.status.Cancel()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Shipment) setOrigin(origin Waypoint) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination Waypoint) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightMustBePositive
	}
	s.weightKg = weightKg
	return nil
}

func (s *Shipment) setPickupAt(pickupAt time.Time) error {
	if pickupAt.IsZero() {
		return ErrPickupAtIsRequired
	}
	s.pickupAt = pickupAt
	return nil
}
