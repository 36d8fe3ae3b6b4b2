package commands

import (
	"errors"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/guard"
)

var (
	ErrDeleteDeveloperCommandIsNotConstructed = errors.New(
		"DeleteDeveloperCommand must be created via NewDeleteDeveloperCommand constructor",
	)
)

// DeleteDeveloperCommand removes a developer with its skill links, bookings and projects.
type DeleteDeveloperCommand struct { //nolint:recvcheck //using for validation
	developerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteDeveloperCommand creates a delete command for developerID.
func NewDeleteDeveloperCommand(developerID kernel.UUID) (DeleteDeveloperCommand, error) {
	cmd := DeleteDeveloperCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeveloperID(developerID); err != nil {
		return DeleteDeveloperCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeveloperCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeveloperCommandIsNotConstructed)
}

// DeveloperID returns the identifier of the developer to delete.
func (c DeleteDeveloperCommand) DeveloperID() kernel.UUID {
	return c.developerID
}

func (c *DeleteDeveloperCommand) setDeveloperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.developerID = id
	return nil
}
