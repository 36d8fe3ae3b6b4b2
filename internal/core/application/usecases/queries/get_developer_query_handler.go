package queries

import (
	"context"
)

// GetDeveloperQueryHandler assembles the developer details view from three readers.
type GetDeveloperQueryHandler struct {
	developers DeveloperReader
	bookings   BookingReader
	projects   ProjectReader
}

// NewGetDeveloperQueryHandler creates a handler for developer details.
func NewGetDeveloperQueryHandler(
	developers DeveloperReader,
	bookings BookingReader,
	projects ProjectReader,
) GetDeveloperQueryHandler {
	return GetDeveloperQueryHandler{
		developers: developers,
		bookings:   bookings,
		projects:   projects,
	}
}

// Handle returns the developer or an ObjectNotFoundError.
func (h GetDeveloperQueryHandler) Handle(
	ctx context.Context,
	query GetDeveloperQuery,
) (GetDeveloperQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeveloperQueryResponse{}, err
	}

	dev, err := h.developers.Get(ctx, query.DeveloperID())
	if err != nil {
		return GetDeveloperQueryResponse{}, err
	}

	bookings, err := h.bookings.FindByDeveloper(ctx, dev.ID())
	if err != nil {
		return GetDeveloperQueryResponse{}, err
	}

	projects, err := h.projects.FindByDeveloper(ctx, dev.ID())
	if err != nil {
		return GetDeveloperQueryResponse{}, err
	}

	projectResponses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		projectResponses = append(projectResponses, ProjectResponse{
			ID:          p.ID(),
			Name:        p.Name(),
			Description: p.Description(),
		})
	}

	return GetDeveloperQueryResponse{
		DeveloperResponse: newDeveloperResponse(dev),
		Bio:               dev.Bio(),
		Projects:          projectResponses,
		UnavailableDates:  newDateRangeResponses(dev.UnavailableDates(bookings)),
	}, nil
}
