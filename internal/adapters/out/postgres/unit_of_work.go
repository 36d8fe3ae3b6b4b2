// Package postgres provides the GORM implementation of the unit of work and the
// schema migration of the devbook tables.
//
// A unit of work owns at most one transaction. Repositories handed out while the
// transaction is open are bound to it, so a developer, its join rows, its bookings
// and its projects can be changed atomically:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//
//	if err := uow.BookingRepository().DeleteByDeveloper(ctx, id); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//	if err := uow.DeveloperRepository().Delete(ctx, id); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Repositories report every aggregate they write through TrackAggregate. Nothing
// in the write path reads that list back; it is an inspection hook that tests and
// diagnostics use via TrackedCount to see what a unit of work touched.
//
// Instances are not safe for concurrent use; create one per command.
package postgres

import (
	"context"

	"devbook/internal/adapters/out/postgres/bookingrepo"
	"devbook/internal/adapters/out/postgres/developerrepo"
	"devbook/internal/adapters/out/postgres/projectrepo"
	"devbook/internal/adapters/out/postgres/skillrepo"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh UnitOfWork with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the aggregates
// written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it again while the transaction is open
// is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the transaction permanent and closes it.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction and closes it.
// Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// DeveloperRepository provides access to developer persistence operations within the unit of work.
// Repository operations will execute within the current transaction if one is active,
// otherwise they use the main database connection for immediate execution.
//
// Example:
//
//	uow := factory.Create()
//	uow.Begin(ctx)
//
//	dev, _ := developer.NewDeveloper(kernel.NewUUID(), attrs, skills)
//	if err := uow.DeveloperRepository().Add(ctx, dev); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//
//	uow.Commit(ctx)
func (uow *GormUnitOfWork) DeveloperRepository() ports.DeveloperRepository {
	return developerrepo.NewGormDeveloperRepository(uow.conn(), uow)
}

// SkillRepository provides access to skill persistence operations within the unit of work.
func (uow *GormUnitOfWork) SkillRepository() ports.SkillRepository {
	return skillrepo.NewGormSkillRepository(uow.conn(), uow)
}

// BookingRepository provides access to booking persistence operations within the unit of work.
func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

// ProjectRepository provides access to project persistence operations within the unit of work.
func (uow *GormUnitOfWork) ProjectRepository() ports.ProjectRepository {
	return projectrepo.NewGormProjectRepository(uow.conn(), uow)
}

// conn returns the active transaction, or the main connection outside of one.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after every successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregates were written so far. It is meant for
// inspection only and does not influence Commit or Rollback.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}
