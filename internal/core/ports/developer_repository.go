// Package ports defines repository interfaces for the devbook domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
//
// Associations that an ORM would declare on the model are explicit methods here:
// skills of a developer come from SkillRepository.FindByDeveloper, bookings from
// BookingRepository.FindByDeveloper, and deleting a developer is a sequence of
// explicit steps run inside one UnitOfWork.
package ports

import (
	"context"

	"devbook/internal/core/domain/model/developer"
	"devbook/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeveloperRepository defines the persistence contract for developer aggregates,
// including their skill join rows.
type DeveloperRepository interface {
	// Add persists a new developer together with its skill join rows.
	// The developer must pass Validate.
	Add(ctx context.Context, aggregate *developer.Developer) error

	// Update persists profile changes and replaces the skill join rows.
	// The developer must exist and pass Validate.
	Update(ctx context.Context, aggregate *developer.Developer) error

	// Get retrieves a developer with its skills.
	Get(ctx context.Context, id kernel.UUID) (*developer.Developer, error)

	// GetByUser retrieves the developer linked to a user account.
	GetByUser(ctx context.Context, userID kernel.UUID) (*developer.Developer, error)

	// Delete removes the developer and its skill join rows in one transaction.
	// Skills themselves are kept.
	Delete(ctx context.Context, id kernel.UUID) error

	// All lists every developer in the given order.
	All(ctx context.Context, sort SortBy) ([]*developer.Developer, error)

	// FindBySkill lists developers having at least one skill whose name contains
	// skill, ignoring case. Each developer appears once.
	FindBySkill(ctx context.Context, skill string, sort SortBy) ([]*developer.Developer, error)

	// FindByPriceRange lists developers whose hourly rate lies in [minRate, maxRate].
	// An inverted range matches nothing.
	FindByPriceRange(ctx context.Context, minRate, maxRate decimal.Decimal, sort SortBy) ([]*developer.Developer, error)

	// Top lists at most limit developers ordered by TopSort.
	Top(ctx context.Context, limit int) ([]*developer.Developer, error)

	// Top6 is Top with TopDevelopersLimit.
	Top6(ctx context.Context) ([]*developer.Developer, error)

	// IncrementBookingsCount bumps the denormalized counter by one without
	// re-validating the profile.
	IncrementBookingsCount(ctx context.Context, id kernel.UUID) error

	// RecountBookings recomputes every bookings counter from the bookings table.
	// Returns the number of developers whose counter changed.
	RecountBookings(ctx context.Context) (int64, error)
}
