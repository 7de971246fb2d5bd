package commands

import (
	"context"

	"freight/internal/core/domain/model/account"
)

// RegisterProfileCommandHandler handles profile registration. The profile row
// is written synchronously; callers that need to wait for it to materialize
// through replication use AwaitProfileCommandHandler afterwards.
type RegisterProfileCommandHandler struct {
	uowFactory ProfileUoWFactory
}

// NewRegisterProfileCommandHandler creates a handler for profile registration.
func NewRegisterProfileCommandHandler(uowFactory ProfileUoWFactory) RegisterProfileCommandHandler {
	return RegisterProfileCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h RegisterProfileCommandHandler) Handle(ctx context.Context, cmd RegisterProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	profile, err := account.NewProfile(
		cmd.ProfileID(), cmd.DisplayName(), cmd.PersonType(), cmd.Roles(), cmd.Email(), cmd.Phone())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProfileRepository().Add(ctx, profile); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
