package commands

import (
	"context"
)

// RecountBookingsCommandHandler repairs bookings counters.
type RecountBookingsCommandHandler struct {
	uowFactory DeveloperUoWFactory
}

// NewRecountBookingsCommandHandler creates a handler for counter reconciliation.
func NewRecountBookingsCommandHandler(uowFactory DeveloperUoWFactory) RecountBookingsCommandHandler {
	return RecountBookingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle recounts inside a transaction and returns how many developers were corrected.
func (h *RecountBookingsCommandHandler) Handle(ctx context.Context, cmd RecountBookingsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	changed, err := uow.DeveloperRepository().RecountBookings(ctx)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}
