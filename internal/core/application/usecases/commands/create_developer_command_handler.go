package commands

import (
	"context"

	"devbook/internal/core/domain/model/developer"
)

// CreateDeveloperCommandHandler persists new developer profiles.
//
// Example:
//
//	handler := NewCreateDeveloperCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); errs.IsValidationFailure(err) {
//	    fmt.Println(errs.FailedAttributes(err))
//	}
type CreateDeveloperCommandHandler struct {
	uowFactory DeveloperUoWFactory
}

// NewCreateDeveloperCommandHandler creates a handler for developer registration.
func NewCreateDeveloperCommandHandler(uowFactory DeveloperUoWFactory) CreateDeveloperCommandHandler {
	return CreateDeveloperCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the skills, builds the developer and stores both in one transaction.
// Missing skills are only inserted once the developer passes validation.
func (h *CreateDeveloperCommandHandler) Handle(ctx context.Context, cmd CreateDeveloperCommand) error {
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

	skillRepo := uow.SkillRepository()
	skills, err := resolveSkills(ctx, skillRepo, cmd.Profile().SkillNames)
	if err != nil {
		return err
	}

	dev, err := developer.NewDeveloper(cmd.DeveloperID(), cmd.Profile().attributes(), skills.all)
	if err != nil {
		return err
	}

	if err = skills.persist(ctx, skillRepo); err != nil {
		return err
	}

	if err = uow.DeveloperRepository().Add(ctx, dev); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
