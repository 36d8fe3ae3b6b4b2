package commands

import (
	"context"

	"devbook/internal/core/domain/model/project"
)

// CreateProjectCommandHandler stores developer projects.
type CreateProjectCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateProjectCommandHandler creates a handler for project registration.
func NewCreateProjectCommandHandler(uowFactory UoWFactory) CreateProjectCommandHandler {
	return CreateProjectCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks that the developer exists and stores the project.
func (h *CreateProjectCommandHandler) Handle(ctx context.Context, cmd CreateProjectCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	p, err := project.NewProject(cmd.ProjectID(), cmd.DeveloperID(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err = uow.DeveloperRepository().Get(ctx, cmd.DeveloperID()); err != nil {
		return err
	}

	if err = uow.ProjectRepository().Add(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
