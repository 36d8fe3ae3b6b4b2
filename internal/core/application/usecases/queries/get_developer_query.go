package queries

import (
	"errors"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/guard"
)

var (
	ErrGetDeveloperQueryIsNotConstructed = errors.New(
		"GetDeveloperQuery must be created via NewGetDeveloperQuery constructor",
	)
)

// GetDeveloperQuery retrieves one developer with bio, projects and unavailable dates.
//
// Example:
//
//	query, err := NewGetDeveloperQuery(id)
//	if err != nil {
//	    return err
//	}
//	details, err := handler.Handle(ctx, query)
//	fmt.Println(details.FullName, details.SkillsToS)
type GetDeveloperQuery struct {
	developerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeveloperQuery creates a details query for developerID.
func NewGetDeveloperQuery(developerID kernel.UUID) (GetDeveloperQuery, error) {
	if err := developerID.Validate(); err != nil {
		return GetDeveloperQuery{}, err
	}

	return GetDeveloperQuery{
		developerID: developerID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeveloperQuery) Validate() error {
	return q.guard.Validate(ErrGetDeveloperQueryIsNotConstructed)
}

// DeveloperID returns the requested developer.
func (q GetDeveloperQuery) DeveloperID() kernel.UUID {
	return q.developerID
}

// GetDeveloperQueryResponse is the details view of a developer.
type GetDeveloperQueryResponse struct {
	DeveloperResponse
	Bio              string
	Projects         []ProjectResponse
	UnavailableDates []DateRangeResponse
}
