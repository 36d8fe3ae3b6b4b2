// Package booking provides the Booking entity: a period during which a developer
// is hired and therefore unavailable.
//
// The booking subsystem owns its own rules; this package only carries what the
// developer side needs: the owning developer, the optional booking user and the
// start and end dates. Dates are not checked against each other.
package booking

import (
	"errors"
	"time"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/errs"
	"devbook/internal/pkg/guard"
)

var (
	ErrStartDateIsRequired     = errs.NewValueIsRequiredError("start_date")
	ErrEndDateIsRequired       = errs.NewValueIsRequiredError("end_date")
	ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")
)

// Booking reserves a developer between two calendar dates.
type Booking struct {
	id          kernel.UUID
	developerID kernel.UUID
	userID      *kernel.UUID
	startDate   time.Time
	endDate     time.Time

	guard guard.ConstructorGuard
}

// NewBooking creates a booking for developerID. userID is optional.
// Both dates are truncated to calendar days.
func NewBooking(
	id kernel.UUID,
	developerID kernel.UUID,
	userID *kernel.UUID,
	startDate time.Time,
	endDate time.Time,
) (*Booking, error) {
	b := &Booking{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setDeveloperID(developerID),
		b.setUserID(userID),
		b.setDates(startDate, endDate),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking rebuilds a booking loaded from storage.
func RestoreBooking(
	id kernel.UUID,
	developerID kernel.UUID,
	userID *kernel.UUID,
	startDate time.Time,
	endDate time.Time,
) (*Booking, error) {
	return NewBooking(id, developerID, userID, startDate, endDate)
}

// Validate ensures the booking was created through NewBooking.
func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

func (b *Booking) ID() kernel.UUID {
	return b.id
}

func (b *Booking) DeveloperID() kernel.UUID {
	return b.developerID
}

// UserID returns the booking user, or nil.
func (b *Booking) UserID() *kernel.UUID {
	return b.userID
}

func (b *Booking) StartDate() time.Time {
	return b.startDate
}

func (b *Booking) EndDate() time.Time {
	return b.endDate
}

// Period returns the booked dates as a range, start first.
func (b *Booking) Period() kernel.DateRange {
	return kernel.NewDateRange(b.startDate, b.endDate)
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setDeveloperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("developer_id", err)
	}
	b.developerID = id
	return nil
}

func (b *Booking) setUserID(id *kernel.UUID) error {
	if id == nil {
		b.userID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user_id", err)
	}
	userID := *id
	b.userID = &userID
	return nil
}

func (b *Booking) setDates(start, end time.Time) error {
	var err error
	if start.IsZero() {
		err = errors.Join(err, ErrStartDateIsRequired)
	}
	if end.IsZero() {
		err = errors.Join(err, ErrEndDateIsRequired)
	}
	if err != nil {
		return err
	}

	b.startDate = kernel.DateOf(start)
	b.endDate = kernel.DateOf(end)
	return nil
}
