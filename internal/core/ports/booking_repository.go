package ports

import (
	"context"

	"devbook/internal/core/domain/model/booking"
	"devbook/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract the developer side needs
// from the booking subsystem.
type BookingRepository interface {
	// Add persists a new booking.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by identifier.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// FindByDeveloper lists the bookings of a developer in creation order.
	FindByDeveloper(ctx context.Context, developerID kernel.UUID) ([]*booking.Booking, error)

	// DeleteByDeveloper removes every booking of a developer.
	DeleteByDeveloper(ctx context.Context, developerID kernel.UUID) error
}
