// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models shaped for the HTTP layer.
package queries

import (
	"context"

	"devbook/internal/core/domain/model/booking"
	"devbook/internal/core/domain/model/developer"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/project"
	"devbook/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Read-side views of the repositories. Handlers run outside of any transaction.
type (
	// DeveloperReader loads developers.
	DeveloperReader interface {
		Get(ctx context.Context, id kernel.UUID) (*developer.Developer, error)
		All(ctx context.Context, sort ports.SortBy) ([]*developer.Developer, error)
		FindBySkill(ctx context.Context, skill string, sort ports.SortBy) ([]*developer.Developer, error)
		FindByPriceRange(
			ctx context.Context,
			minRate, maxRate decimal.Decimal,
			sort ports.SortBy,
		) ([]*developer.Developer, error)
		Top6(ctx context.Context) ([]*developer.Developer, error)
	}

	// BookingReader loads the bookings of a developer.
	BookingReader interface {
		FindByDeveloper(ctx context.Context, developerID kernel.UUID) ([]*booking.Booking, error)
	}

	// ProjectReader loads the projects of a developer.
	ProjectReader interface {
		FindByDeveloper(ctx context.Context, developerID kernel.UUID) ([]*project.Project, error)
	}
)
