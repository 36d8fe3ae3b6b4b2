package commands

import (
	"errors"
	"time"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/guard"
)

var (
	ErrCreateBookingCommandIsNotConstructed = errors.New(
		"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
	)
)

// CreateBookingCommand books a developer for a date range, optionally on behalf of a user.
// The range is stored as given; an end before the start is accepted.
type CreateBookingCommand struct { //nolint:recvcheck //using for validation
	bookingID   kernel.UUID
	developerID kernel.UUID
	userID      *kernel.UUID
	startDate   time.Time
	endDate     time.Time

	guard guard.ConstructorGuard
}

// NewCreateBookingCommand creates a booking command. Dates are checked by the booking aggregate.
func NewCreateBookingCommand(
	bookingID kernel.UUID,
	developerID kernel.UUID,
	userID *kernel.UUID,
	startDate time.Time,
	endDate time.Time,
) (CreateBookingCommand, error) {
	cmd := CreateBookingCommand{
		userID:    userID,
		startDate: startDate,
		endDate:   endDate,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bookingID.Validate(),
		developerID.Validate(),
	); err != nil {
		return CreateBookingCommand{}, err
	}
	cmd.bookingID = bookingID
	cmd.developerID = developerID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

// BookingID returns the identifier of the booking to create.
func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

// DeveloperID returns the booked developer.
func (c CreateBookingCommand) DeveloperID() kernel.UUID {
	return c.developerID
}

// UserID returns the booking user, or nil.
func (c CreateBookingCommand) UserID() *kernel.UUID {
	return c.userID
}

// StartDate returns the first booked day.
func (c CreateBookingCommand) StartDate() time.Time {
	return c.startDate
}

// EndDate returns the last booked day.
func (c CreateBookingCommand) EndDate() time.Time {
	return c.endDate
}
