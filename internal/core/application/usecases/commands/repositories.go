// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"devbook/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DeveloperRepoFactory provides access to the developer repository within a transaction.
	DeveloperRepoFactory interface {
		DeveloperRepository() ports.DeveloperRepository
	}

	// SkillRepoFactory provides access to the skill repository within a transaction.
	SkillRepoFactory interface {
		SkillRepository() ports.SkillRepository
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// ProjectRepoFactory provides access to the project repository within a transaction.
	ProjectRepoFactory interface {
		ProjectRepository() ports.ProjectRepository
	}

	// SkillUoW manages transactions for skill-only operations.
	SkillUoW interface {
		TxManager
		SkillRepoFactory
	}

	// SkillUoWFactory creates new skill unit of work instances.
	SkillUoWFactory interface {
		Create() SkillUoW
	}

	// DeveloperUoW manages transactions that write a developer profile and the
	// skills it references.
	DeveloperUoW interface {
		TxManager
		DeveloperRepoFactory
		SkillRepoFactory
	}

	// DeveloperUoWFactory creates new developer unit of work instances.
	DeveloperUoWFactory interface {
		Create() DeveloperUoW
	}

	// UoW spans every repository. Used when a command changes a developer
	// together with its bookings or projects.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   _ = uow.BookingRepository().DeleteByDeveloper(ctx, id)
	//   _ = uow.DeveloperRepository().Delete(ctx, id)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		DeveloperRepoFactory
		SkillRepoFactory
		BookingRepoFactory
		ProjectRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
