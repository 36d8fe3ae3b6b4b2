package commands

import (
	"errors"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/guard"
)

var (
	ErrCreateProjectCommandIsNotConstructed = errors.New(
		"CreateProjectCommand must be created via NewCreateProjectCommand constructor",
	)
)

// CreateProjectCommand adds a portfolio project to a developer.
type CreateProjectCommand struct { //nolint:recvcheck //using for validation
	projectID   kernel.UUID
	developerID kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateProjectCommand creates a project command. The name is checked by the project aggregate.
func NewCreateProjectCommand(
	projectID kernel.UUID,
	developerID kernel.UUID,
	name string,
	description string,
) (CreateProjectCommand, error) {
	if err := errors.Join(
		projectID.Validate(),
		developerID.Validate(),
	); err != nil {
		return CreateProjectCommand{}, err
	}

	return CreateProjectCommand{
		projectID:   projectID,
		developerID: developerID,
		name:        name,
		description: description,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProjectCommand) Validate() error {
	return c.guard.Validate(ErrCreateProjectCommandIsNotConstructed)
}

// ProjectID returns the identifier of the project to create.
func (c CreateProjectCommand) ProjectID() kernel.UUID {
	return c.projectID
}

// DeveloperID returns the owning developer.
func (c CreateProjectCommand) DeveloperID() kernel.UUID {
	return c.developerID
}

// Name returns the project name.
func (c CreateProjectCommand) Name() string {
	return c.name
}

// Description returns the project description.
func (c CreateProjectCommand) Description() string {
	return c.description
}
