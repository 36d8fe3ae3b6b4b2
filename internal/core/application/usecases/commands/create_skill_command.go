package commands

import (
	"errors"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/guard"
)

var (
	ErrCreateSkillCommandIsNotConstructed = errors.New(
		"CreateSkillCommand must be created via NewCreateSkillCommand constructor",
	)
)

// CreateSkillCommand registers a skill name that developers can reference.
type CreateSkillCommand struct { //nolint:recvcheck //using for validation
	skillID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateSkillCommand creates a command for a new skill. The name is checked by
// the skill aggregate.
func NewCreateSkillCommand(skillID kernel.UUID, name string) (CreateSkillCommand, error) {
	cmd := CreateSkillCommand{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSkillID(skillID); err != nil {
		return CreateSkillCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSkillCommand) Validate() error {
	return c.guard.Validate(ErrCreateSkillCommandIsNotConstructed)
}

// SkillID returns the identifier of the skill to create.
func (c CreateSkillCommand) SkillID() kernel.UUID {
	return c.skillID
}

// Name returns the requested skill name.
func (c CreateSkillCommand) Name() string {
	return c.name
}

func (c *CreateSkillCommand) setSkillID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.skillID = id
	return nil
}
