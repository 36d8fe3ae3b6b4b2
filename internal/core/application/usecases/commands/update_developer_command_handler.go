package commands

import (
	"context"
)

// UpdateDeveloperCommandHandler applies profile changes to stored developers.
type UpdateDeveloperCommandHandler struct {
	uowFactory DeveloperUoWFactory
}

// NewUpdateDeveloperCommandHandler creates a handler for developer updates.
func NewUpdateDeveloperCommandHandler(uowFactory DeveloperUoWFactory) UpdateDeveloperCommandHandler {
	return UpdateDeveloperCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the developer, applies the new profile and saves it. A validation
// failure leaves the stored developer untouched.
func (h *UpdateDeveloperCommandHandler) Handle(ctx context.Context, cmd UpdateDeveloperCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	developerRepo := uow.DeveloperRepository()
	dev, err := developerRepo.Get(ctx, cmd.DeveloperID())
	if err != nil {
		return err
	}

	skillRepo := uow.SkillRepository()
	skills, err := resolveSkills(ctx, skillRepo, cmd.Profile().SkillNames)
	if err != nil {
		return err
	}

	if err = dev.Update(cmd.Profile().attributes(), skills.all); err != nil {
		return err
	}

	if err = skills.persist(ctx, skillRepo); err != nil {
		return err
	}

	if err = developerRepo.Update(ctx, dev); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
