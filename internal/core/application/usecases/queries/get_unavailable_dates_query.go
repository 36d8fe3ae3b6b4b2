package queries

import (
	"context"
	"errors"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/guard"
)

var (
	ErrGetUnavailableDatesQueryIsNotConstructed = errors.New(
		"GetUnavailableDatesQuery must be created via NewGetUnavailableDatesQuery constructor",
	)
)

// GetUnavailableDatesQuery lists the booked periods of a developer, one entry per
// booking in booking order. Overlapping periods are not merged.
type GetUnavailableDatesQuery struct {
	developerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUnavailableDatesQuery creates the query for developerID.
func NewGetUnavailableDatesQuery(developerID kernel.UUID) (GetUnavailableDatesQuery, error) {
	if err := developerID.Validate(); err != nil {
		return GetUnavailableDatesQuery{}, err
	}

	return GetUnavailableDatesQuery{
		developerID: developerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUnavailableDatesQuery) Validate() error {
	return q.guard.Validate(ErrGetUnavailableDatesQueryIsNotConstructed)
}

// DeveloperID returns the requested developer.
func (q GetUnavailableDatesQuery) DeveloperID() kernel.UUID {
	return q.developerID
}

// GetUnavailableDatesQueryHandler serves GetUnavailableDatesQuery.
type GetUnavailableDatesQueryHandler struct {
	developers DeveloperReader
	bookings   BookingReader
}

// NewGetUnavailableDatesQueryHandler creates a handler for unavailable dates.
func NewGetUnavailableDatesQueryHandler(
	developers DeveloperReader,
	bookings BookingReader,
) GetUnavailableDatesQueryHandler {
	return GetUnavailableDatesQueryHandler{
		developers: developers,
		bookings:   bookings,
	}
}

// Handle returns an empty list for a developer without bookings and an
// ObjectNotFoundError for an unknown developer.
func (h GetUnavailableDatesQueryHandler) Handle(
	ctx context.Context,
	query GetUnavailableDatesQuery,
) ([]DateRangeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dev, err := h.developers.Get(ctx, query.DeveloperID())
	if err != nil {
		return nil, err
	}

	bookings, err := h.bookings.FindByDeveloper(ctx, dev.ID())
	if err != nil {
		return nil, err
	}

	return newDateRangeResponses(dev.UnavailableDates(bookings)), nil
}
