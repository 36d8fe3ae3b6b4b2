package commands

import (
	"errors"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/guard"
)

var (
	ErrUpdateDeveloperCommandIsNotConstructed = errors.New(
		"UpdateDeveloperCommand must be created via NewUpdateDeveloperCommand constructor",
	)
)

// UpdateDeveloperCommand replaces the profile and skills of an existing developer.
// The bookings counter is not part of the profile and is left alone.
type UpdateDeveloperCommand struct { //nolint:recvcheck //using for validation
	developerID kernel.UUID
	profile     DeveloperProfile

	guard guard.ConstructorGuard
}

// NewUpdateDeveloperCommand creates an update command for developerID.
func NewUpdateDeveloperCommand(developerID kernel.UUID, profile DeveloperProfile) (UpdateDeveloperCommand, error) {
	cmd := UpdateDeveloperCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeveloperID(developerID),
		cmd.setProfile(profile),
	); err != nil {
		return UpdateDeveloperCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeveloperCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeveloperCommandIsNotConstructed)
}

// DeveloperID returns the identifier of the developer to update.
func (c UpdateDeveloperCommand) DeveloperID() kernel.UUID {
	return c.developerID
}

// Profile returns the new profile with normalized skill names.
func (c UpdateDeveloperCommand) Profile() DeveloperProfile {
	return c.profile
}

func (c *UpdateDeveloperCommand) setDeveloperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.developerID = id
	return nil
}

func (c *UpdateDeveloperCommand) setProfile(profile DeveloperProfile) error {
	if err := profile.validate(); err != nil {
		return err
	}

	profile.SkillNames = normalizedSkillNames(profile.SkillNames)
	c.profile = profile
	return nil
}
