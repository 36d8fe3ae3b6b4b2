package commands

import (
	"context"

	"devbook/internal/core/domain/model/skill"
)

// CreateSkillCommandHandler persists new skills.
type CreateSkillCommandHandler struct {
	uowFactory SkillUoWFactory
}

// NewCreateSkillCommandHandler creates a handler for skill registration.
func NewCreateSkillCommandHandler(uowFactory SkillUoWFactory) CreateSkillCommandHandler {
	return CreateSkillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the skill. A name already in use is reported as an invalid name.
func (h *CreateSkillCommandHandler) Handle(ctx context.Context, cmd CreateSkillCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	s, err := skill.NewSkill(cmd.SkillID(), cmd.Name())
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

	if err = uow.SkillRepository().Add(ctx, s); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
