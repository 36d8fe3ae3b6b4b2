package commands

import (
	"context"
)

// DeleteDeveloperCommandHandler removes developers and everything they own.
type DeleteDeveloperCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeleteDeveloperCommandHandler creates a handler for developer deletion.
func NewDeleteDeveloperCommandHandler(uowFactory UoWFactory) DeleteDeveloperCommandHandler {
	return DeleteDeveloperCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes bookings and projects of the developer, then the developer with
// its skill links. Skills stay. Any failure rolls the whole deletion back, including
// a missing developer.
func (h *DeleteDeveloperCommandHandler) Handle(ctx context.Context, cmd DeleteDeveloperCommand) error {
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

	if err := uow.BookingRepository().DeleteByDeveloper(ctx, cmd.DeveloperID()); err != nil {
		return err
	}

	if err := uow.ProjectRepository().DeleteByDeveloper(ctx, cmd.DeveloperID()); err != nil {
		return err
	}

	if err := uow.DeveloperRepository().Delete(ctx, cmd.DeveloperID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
