package ports

import (
	"context"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/project"
)

// ProjectRepository defines the persistence contract for developer projects.
type ProjectRepository interface {
	// Add persists a new project.
	Add(ctx context.Context, aggregate *project.Project) error

	// FindByDeveloper lists the projects of a developer in creation order.
	FindByDeveloper(ctx context.Context, developerID kernel.UUID) ([]*project.Project, error)

	// DeleteByDeveloper removes every project of a developer.
	DeleteByDeveloper(ctx context.Context, developerID kernel.UUID) error
}
