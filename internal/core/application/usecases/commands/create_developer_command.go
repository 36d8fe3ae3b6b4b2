package commands

import (
	"errors"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/guard"
)

var (
	ErrCreateDeveloperCommandIsNotConstructed = errors.New(
		"CreateDeveloperCommand must be created via NewCreateDeveloperCommand constructor",
	)
)

// CreateDeveloperCommand registers a new developer profile. Skills are given by name;
// names that do not exist yet become new skills.
//
// Example:
//
//	cmd, err := NewCreateDeveloperCommand(kernel.NewUUID(), DeveloperProfile{
//	    FirstName:      "Ada",
//	    LastName:       "Lovelace",
//	    Bio:            "Analytical engine programmer with a taste for poetry.",
//	    GithubUsername: "ada",
//	    HourlyRate:     decimal.RequireFromString("120"),
//	    SkillNames:     []string{"ruby", "go"},
//	})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateDeveloperCommand struct { //nolint:recvcheck //using for validation
	developerID kernel.UUID
	profile     DeveloperProfile

	guard guard.ConstructorGuard
}

// NewCreateDeveloperCommand checks identifiers and the rate range. Profile presence
// rules are checked by the aggregate when the command is handled.
func NewCreateDeveloperCommand(developerID kernel.UUID, profile DeveloperProfile) (CreateDeveloperCommand, error) {
	cmd := CreateDeveloperCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeveloperID(developerID),
		cmd.setProfile(profile),
	); err != nil {
		return CreateDeveloperCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeveloperCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeveloperCommandIsNotConstructed)
}

// DeveloperID returns the identifier of the developer to create.
func (c CreateDeveloperCommand) DeveloperID() kernel.UUID {
	return c.developerID
}

// Profile returns the requested profile with normalized skill names.
func (c CreateDeveloperCommand) Profile() DeveloperProfile {
	return c.profile
}

func (c *CreateDeveloperCommand) setDeveloperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.developerID = id
	return nil
}

func (c *CreateDeveloperCommand) setProfile(profile DeveloperProfile) error {
	if err := profile.validate(); err != nil {
		return err
	}

	profile.SkillNames = normalizedSkillNames(profile.SkillNames)
	c.profile = profile
	return nil
}
