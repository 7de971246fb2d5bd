package commands

import (
	"context"
	"log/slog"

	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// CreateShipmentCommandHandler handles the business logic for publishing
// shipments. Only profiles holding a shipper-capable role may publish. New
// shipments start in Requested status; waypoints with a place
// id are resolved to coordinates through the geocoder, but geocoding is best
// effort: an unreachable provider leaves the waypoint unresolved instead of
// failing the whole request, and the route distance simply stays unknown.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	geocoder   ports.Geocoder
	log        *slog.Logger
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory, geocoder ports.Geocoder, log *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		log:        log.With("component", "create_shipment"),
	}
}

// Handle processes the shipment creation command.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	origin, err := h.buildWaypoint(ctx, cmd.OriginAddress(), cmd.OriginPlaceID())
	if err != nil {
		return err
	}
	destination, err := h.buildWaypoint(ctx, cmd.DestinationAddress(), cmd.DestinationPlaceID())
	if err != nil {
		return err
	}

	aggregate, err := shipment.NewShipment(
		cmd.ShipmentID(), cmd.OwnerID(), origin, destination, cmd.WeightKg(), cmd.PickupAt())
	if err != nil {
		return err
	}

	for _, address := range cmd.StopAddresses() {
		stop, stopErr := shipment.NewWaypoint(address)
		if stopErr != nil {
			return stopErr
		}
		if stopErr = aggregate.AddStop(stop); stopErr != nil {
			return stopErr
		}
	}

	aggregate.SetCargo(cmd.CargoType(), cmd.Dimensions(), cmd.VehicleType(), cmd.BodyType())
	aggregate.SetObservations(cmd.Observations())

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.ProfileRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}
	if !owner.CanShip() {
		return errs.NewUnauthorizedError(cmd.OwnerID().String(), "CreateShipment")
	}

	if err = uow.ShipmentRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CreateShipmentCommandHandler) buildWaypoint(
	ctx context.Context, address, placeID string,
) (shipment.Waypoint, error) {
	if placeID == "" {
		return shipment.NewWaypoint(address)
	}

	point, err := h.geocoder.Resolve(ctx, placeID)
	if err != nil {
		h.log.Warn("geocoding failed, storing waypoint unresolved",
			"place_id", placeID, "error", err)
		return shipment.NewWaypoint(address)
	}

	return shipment.NewResolvedWaypoint(address, point)
}
