package queries

import (
	"context"
	"errors"

	"devbook/internal/core/ports"
	"devbook/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrFindDevelopersByPriceRangeQueryIsNotConstructed = errors.New(
		"FindDevelopersByPriceRangeQuery must be created via NewFindDevelopersByPriceRangeQuery constructor",
	)
)

// FindDevelopersByPriceRangeQuery finds developers whose hourly rate lies within
// [minRate, maxRate]. An inverted range is allowed and matches nobody.
type FindDevelopersByPriceRangeQuery struct {
	minRate decimal.Decimal
	maxRate decimal.Decimal
	sort    ports.SortBy

	guard guard.ConstructorGuard
}

// NewFindDevelopersByPriceRangeQuery creates a price range search.
func NewFindDevelopersByPriceRangeQuery(
	minRate, maxRate decimal.Decimal,
	sort ports.SortBy,
) FindDevelopersByPriceRangeQuery {
	return FindDevelopersByPriceRangeQuery{
		minRate: minRate,
		maxRate: maxRate,
		sort:    sort.OrDefault(),
		guard:   guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q FindDevelopersByPriceRangeQuery) Validate() error {
	return q.guard.Validate(ErrFindDevelopersByPriceRangeQueryIsNotConstructed)
}

// MinRate returns the inclusive lower bound.
func (q FindDevelopersByPriceRangeQuery) MinRate() decimal.Decimal {
	return q.minRate
}

// MaxRate returns the inclusive upper bound.
func (q FindDevelopersByPriceRangeQuery) MaxRate() decimal.Decimal {
	return q.maxRate
}

// Sort returns the requested order.
func (q FindDevelopersByPriceRangeQuery) Sort() ports.SortBy {
	return q.sort
}

// FindDevelopersByPriceRangeQueryHandler serves FindDevelopersByPriceRangeQuery.
type FindDevelopersByPriceRangeQueryHandler struct {
	developers DeveloperReader
}

// NewFindDevelopersByPriceRangeQueryHandler creates a handler for price range searches.
func NewFindDevelopersByPriceRangeQueryHandler(developers DeveloperReader) FindDevelopersByPriceRangeQueryHandler {
	return FindDevelopersByPriceRangeQueryHandler{developers: developers}
}

// Handle returns the developers within the range.
func (h FindDevelopersByPriceRangeQueryHandler) Handle(
	ctx context.Context,
	query FindDevelopersByPriceRangeQuery,
) ([]DeveloperResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	developers, err := h.developers.FindByPriceRange(ctx, query.MinRate(), query.MaxRate(), query.Sort())
	if err != nil {
		return nil, err
	}

	return newDeveloperResponses(developers), nil
}
