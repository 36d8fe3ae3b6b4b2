package commands

import (
	"context"

	"devbook/internal/core/domain/model/booking"
)

// CreateBookingCommandHandler stores bookings and keeps the developer's counter in step.
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateBookingCommandHandler creates a handler for booking registration.
func NewCreateBookingCommandHandler(uowFactory UoWFactory) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the booking and increments bookings_count of the developer in the
// same transaction.
func (h *CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	b, err := booking.NewBooking(cmd.BookingID(), cmd.DeveloperID(), cmd.UserID(), cmd.StartDate(), cmd.EndDate())
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

	developerRepo := uow.DeveloperRepository()
	if _, err = developerRepo.Get(ctx, cmd.DeveloperID()); err != nil {
		return err
	}

	if err = uow.BookingRepository().Add(ctx, b); err != nil {
		return err
	}

	if err = developerRepo.IncrementBookingsCount(ctx, cmd.DeveloperID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
