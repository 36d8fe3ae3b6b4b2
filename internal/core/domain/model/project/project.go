// Package project provides the Project entity: portfolio work a developer owns.
package project

import (
	"errors"
	"strings"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/errs"
	"devbook/internal/pkg/guard"
)

var (
	ErrNameIsRequired          = errs.NewValueIsRequiredError("name")
	ErrProjectIsNotConstructed = errors.New("Project must be created via NewProject constructor")
)

// Project is a named piece of work attached to one developer.
type Project struct {
	id          kernel.UUID
	developerID kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewProject creates a project owned by developerID. The description may be empty.
func NewProject(id kernel.UUID, developerID kernel.UUID, name string, description string) (*Project, error) {
	p := &Project{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setDeveloperID(developerID),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProject rebuilds a project loaded from storage.
func RestoreProject(id kernel.UUID, developerID kernel.UUID, name string, description string) (*Project, error) {
	return NewProject(id, developerID, name, description)
}

// Validate ensures the project was created through NewProject.
func (p *Project) Validate() error {
	if p == nil {
		return ErrProjectIsNotConstructed
	}
	return p.guard.Validate(ErrProjectIsNotConstructed)
}

func (p *Project) ID() kernel.UUID {
	return p.id
}

func (p *Project) DeveloperID() kernel.UUID {
	return p.developerID
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Project) setDeveloperID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("developer_id", err)
	}
	p.developerID = id
	return nil
}

func (p *Project) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
