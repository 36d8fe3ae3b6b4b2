package ports

import (
	"context"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/skill"
)

// SkillRepository defines the persistence contract for skills.
type SkillRepository interface {
	// Add persists a new skill. Names are unique.
	Add(ctx context.Context, aggregate *skill.Skill) error

	// Get retrieves a skill by identifier.
	Get(ctx context.Context, id kernel.UUID) (*skill.Skill, error)

	// GetByName retrieves a skill by its exact stored name.
	GetByName(ctx context.Context, name string) (*skill.Skill, error)

	// FindByDeveloper lists the skills attached to a developer in attachment order.
	FindByDeveloper(ctx context.Context, developerID kernel.UUID) ([]*skill.Skill, error)
}
