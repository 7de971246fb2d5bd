package shipment

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrWaypointIsNotConstructed is returned when using an improperly
// initialized Waypoint.
var ErrWaypointIsNotConstructed = errs.NewValueIsRequiredError(
	"waypoint must be created via NewWaypoint or NewResolvedWaypoint constructors")

// ErrAddressIsRequired is returned when a waypoint is created without an address.
var ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

// Waypoint is a stop on a shipment's route: a free-text address plus
// optionally resolved geocoordinates. Addresses are entered by the user and
// resolved asynchronously by the geocoding collaborator, so a waypoint may
// exist without coordinates. Unresolved waypoints stay in the address list
// but are excluded from the route distance sum.
type Waypoint struct {
	address string
	point   *kernel.GeoPoint
	guard   guard.ConstructorGuard
}

// NewWaypoint creates an unresolved waypoint from a free-text address.
func NewWaypoint(address string) (Waypoint, error) {
	if address == "" {
		return Waypoint{}, ErrAddressIsRequired
	}

	return Waypoint{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewResolvedWaypoint creates a waypoint whose coordinates are already known.
func NewResolvedWaypoint(address string, point kernel.GeoPoint) (Waypoint, error) {
	if err := point.Validate(); err != nil {
		return Waypoint{}, err
	}

	waypoint, err := NewWaypoint(address)
	if err != nil {
		return Waypoint{}, err
	}

	waypoint.point = &point
	return waypoint, nil
}

// Validate checks that the Waypoint was built through a constructor.
func (w Waypoint) Validate() error {
	return w.guard.Validate(ErrWaypointIsNotConstructed)
}

// Address returns the free-text address.
func (w Waypoint) Address() string {
	return w.address
}

// Point returns the resolved coordinates, or nil when unresolved.
func (w Waypoint) Point() *kernel.GeoPoint {
	return w.point
}

// IsResolved reports whether the waypoint carries coordinates.
func (w Waypoint) IsResolved() bool {
	return w.point != nil
}

// Resolved returns a copy of the waypoint with coordinates attached.
func (w Waypoint) Resolved(point kernel.GeoPoint) (Waypoint, error) {
	if err := w.Validate(); err != nil {
		return Waypoint{}, err
	}
	if err := point.Validate(); err != nil {
		return Waypoint{}, err
	}

	w.point = &point
	return w, nil
}
