package queries

import (
	"context"
	"errors"

	"devbook/internal/pkg/guard"
)

var (
	ErrGetTopDevelopersQueryIsNotConstructed = errors.New(
		"GetTopDevelopersQuery must be created via NewGetTopDevelopersQuery constructor",
	)
)

// GetTopDevelopersQuery returns the six most booked developers, richer ones first on ties.
type GetTopDevelopersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTopDevelopersQuery creates the top developers query.
func NewGetTopDevelopersQuery() GetTopDevelopersQuery {
	return GetTopDevelopersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTopDevelopersQuery) Validate() error {
	return q.guard.Validate(ErrGetTopDevelopersQueryIsNotConstructed)
}

// GetTopDevelopersQueryHandler serves GetTopDevelopersQuery.
type GetTopDevelopersQueryHandler struct {
	developers DeveloperReader
}

// NewGetTopDevelopersQueryHandler creates a handler for the top developers listing.
func NewGetTopDevelopersQueryHandler(developers DeveloperReader) GetTopDevelopersQueryHandler {
	return GetTopDevelopersQueryHandler{developers: developers}
}

// Handle returns at most six developers.
func (h GetTopDevelopersQueryHandler) Handle(
	ctx context.Context,
	query GetTopDevelopersQuery,
) ([]DeveloperResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	developers, err := h.developers.Top6(ctx)
	if err != nil {
		return nil, err
	}

	return newDeveloperResponses(developers), nil
}
