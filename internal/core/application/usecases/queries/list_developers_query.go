package queries

import (
	"context"
	"errors"

	"devbook/internal/core/ports"
	"devbook/internal/pkg/guard"
)

var (
	ErrListDevelopersQueryIsNotConstructed = errors.New(
		"ListDevelopersQuery must be created via NewListDevelopersQuery constructor",
	)
)

// ListDevelopersQuery lists every developer. Without an explicit sort the
// developers come back by hourly rate, highest first.
type ListDevelopersQuery struct {
	sort ports.SortBy

	guard guard.ConstructorGuard
}

// NewListDevelopersQuery creates a list query. A nil sort means ports.DefaultSort.
func NewListDevelopersQuery(sort ports.SortBy) ListDevelopersQuery {
	return ListDevelopersQuery{
		sort:  sort.OrDefault(),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q ListDevelopersQuery) Validate() error {
	return q.guard.Validate(ErrListDevelopersQueryIsNotConstructed)
}

// Sort returns the requested order.
func (q ListDevelopersQuery) Sort() ports.SortBy {
	return q.sort
}

// ListDevelopersQueryHandler serves ListDevelopersQuery.
type ListDevelopersQueryHandler struct {
	developers DeveloperReader
}

// NewListDevelopersQueryHandler creates a handler for developer listings.
func NewListDevelopersQueryHandler(developers DeveloperReader) ListDevelopersQueryHandler {
	return ListDevelopersQueryHandler{developers: developers}
}

// Handle returns all developers in the requested order.
func (h ListDevelopersQueryHandler) Handle(ctx context.Context, query ListDevelopersQuery) ([]DeveloperResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	developers, err := h.developers.All(ctx, query.Sort())
	if err != nil {
		return nil, err
	}

	return newDeveloperResponses(developers), nil
}
