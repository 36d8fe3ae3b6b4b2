package queries

import (
	"context"
	"errors"

	"devbook/internal/core/ports"
	"devbook/internal/pkg/guard"
)

var (
	ErrFindDevelopersBySkillQueryIsNotConstructed = errors.New(
		"FindDevelopersBySkillQuery must be created via NewFindDevelopersBySkillQuery constructor",
	)
)

// FindDevelopersBySkillQuery finds developers whose skill names contain a term,
// ignoring case. The term is used verbatim: " lang" matches "go lang" but not
// "golang", and the empty term matches every developer.
type FindDevelopersBySkillQuery struct {
	skill string
	sort  ports.SortBy

	guard guard.ConstructorGuard
}

// NewFindDevelopersBySkillQuery creates a skill search.
func NewFindDevelopersBySkillQuery(skill string, sort ports.SortBy) FindDevelopersBySkillQuery {
	return FindDevelopersBySkillQuery{
		skill: skill,
		sort:  sort.OrDefault(),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q FindDevelopersBySkillQuery) Validate() error {
	return q.guard.Validate(ErrFindDevelopersBySkillQueryIsNotConstructed)
}

// Skill returns the search term.
func (q FindDevelopersBySkillQuery) Skill() string {
	return q.skill
}

// Sort returns the requested order.
func (q FindDevelopersBySkillQuery) Sort() ports.SortBy {
	return q.sort
}

// FindDevelopersBySkillQueryHandler serves FindDevelopersBySkillQuery.
type FindDevelopersBySkillQueryHandler struct {
	developers DeveloperReader
}

// NewFindDevelopersBySkillQueryHandler creates a handler for skill searches.
func NewFindDevelopersBySkillQueryHandler(developers DeveloperReader) FindDevelopersBySkillQueryHandler {
	return FindDevelopersBySkillQueryHandler{developers: developers}
}

// Handle returns each matching developer once.
func (h FindDevelopersBySkillQueryHandler) Handle(
	ctx context.Context,
	query FindDevelopersBySkillQuery,
) ([]DeveloperResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	developers, err := h.developers.FindBySkill(ctx, query.Skill(), query.Sort())
	if err != nil {
		return nil, err
	}

	return newDeveloperResponses(developers), nil
}
