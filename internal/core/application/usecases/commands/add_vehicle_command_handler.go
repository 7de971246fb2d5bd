package commands

import (
	"context"

	"freight/internal/core/domain/model/fleet"
	"freight/internal/pkg/errs"
)

// AddVehicleCommandHandler handles fleet registration. Only profiles that may
// carry cargo can register vehicles.
type AddVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewAddVehicleCommandHandler creates a handler for vehicle registration.
func NewAddVehicleCommandHandler(uowFactory FleetUoWFactory) AddVehicleCommandHandler {
	return AddVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
func (h AddVehicleCommandHandler) Handle(ctx context.Context, cmd AddVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.ProfileRepository().Get(ctx, cmd.OwnerID())
	if err != nil {
		return err
	}
	if !owner.CanCarry() {
		return errs.NewUnauthorizedError(cmd.OwnerID().String(), "AddVehicle")
	}

	vehicle, err := fleet.NewVehicle(
		cmd.VehicleID(), cmd.OwnerID(), cmd.VehicleType(), cmd.BodyType(), cmd.Plate(), cmd.CapacityKg())
	if err != nil {
		return err
	}

	if err = uow.FleetRepository().Add(ctx, vehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
