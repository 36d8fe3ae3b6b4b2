package cmd

import (
	"log/slog"

	httpadapter "devbook/internal/adapters/in/http"
	"devbook/internal/adapters/out/postgres"
	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/application/usecases/queries"
	"devbook/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) developerUoWFactory() commands.DeveloperUoWFactory {
	return FuncDeveloperUoWFactory(func() commands.DeveloperUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) skillUoWFactory() commands.SkillUoWFactory {
	return FuncSkillUoWFactory(func() commands.SkillUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateDeveloperCommandHandler() *commands.CreateDeveloperCommandHandler {
	handler := commands.NewCreateDeveloperCommandHandler(c.developerUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateUpdateDeveloperCommandHandler() *commands.UpdateDeveloperCommandHandler {
	handler := commands.NewUpdateDeveloperCommandHandler(c.developerUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateDeleteDeveloperCommandHandler() *commands.DeleteDeveloperCommandHandler {
	handler := commands.NewDeleteDeveloperCommandHandler(c.fullUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateCreateSkillCommandHandler() *commands.CreateSkillCommandHandler {
	handler := commands.NewCreateSkillCommandHandler(c.skillUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() *commands.CreateBookingCommandHandler {
	handler := commands.NewCreateBookingCommandHandler(c.fullUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateCreateProjectCommandHandler() *commands.CreateProjectCommandHandler {
	handler := commands.NewCreateProjectCommandHandler(c.fullUoWFactory())
	return &handler
}

func (c *CompositionRoot) CreateRecountBookingsCommandHandler() *commands.RecountBookingsCommandHandler {
	handler := commands.NewRecountBookingsCommandHandler(c.developerUoWFactory())
	return &handler
}

// Queries read outside a transaction through repositories bound to the plain connection.

func (c *CompositionRoot) CreateGetDeveloperQueryHandler() queries.GetDeveloperQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetDeveloperQueryHandler(uow.DeveloperRepository(), uow.BookingRepository(), uow.ProjectRepository())
}

func (c *CompositionRoot) CreateListDevelopersQueryHandler() queries.ListDevelopersQueryHandler {
	return queries.NewListDevelopersQueryHandler(c.uowFactory.Create().DeveloperRepository())
}

func (c *CompositionRoot) CreateFindDevelopersBySkillQueryHandler() queries.FindDevelopersBySkillQueryHandler {
	return queries.NewFindDevelopersBySkillQueryHandler(c.uowFactory.Create().DeveloperRepository())
}

func (c *CompositionRoot) CreateFindDevelopersByPriceRangeQueryHandler() queries.FindDevelopersByPriceRangeQueryHandler {
	return queries.NewFindDevelopersByPriceRangeQueryHandler(c.uowFactory.Create().DeveloperRepository())
}

func (c *CompositionRoot) CreateGetTopDevelopersQueryHandler() queries.GetTopDevelopersQueryHandler {
	return queries.NewGetTopDevelopersQueryHandler(c.uowFactory.Create().DeveloperRepository())
}

func (c *CompositionRoot) CreateGetUnavailableDatesQueryHandler() queries.GetUnavailableDatesQueryHandler {
	uow := c.uowFactory.Create()
	return queries.NewGetUnavailableDatesQueryHandler(uow.DeveloperRepository(), uow.BookingRepository())
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateDeveloper:            c.CreateCreateDeveloperCommandHandler(),
		UpdateDeveloper:            c.CreateUpdateDeveloperCommandHandler(),
		DeleteDeveloper:            c.CreateDeleteDeveloperCommandHandler(),
		CreateSkill:                c.CreateCreateSkillCommandHandler(),
		CreateBooking:              c.CreateCreateBookingCommandHandler(),
		CreateProject:              c.CreateCreateProjectCommandHandler(),
		GetDeveloper:               c.CreateGetDeveloperQueryHandler(),
		ListDevelopers:             c.CreateListDevelopersQueryHandler(),
		FindDevelopersBySkill:      c.CreateFindDevelopersBySkillQueryHandler(),
		FindDevelopersByPriceRange: c.CreateFindDevelopersByPriceRangeQueryHandler(),
		GetTopDevelopers:           c.CreateGetTopDevelopersQueryHandler(),
		GetUnavailableDates:        c.CreateGetUnavailableDatesQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateRecountBookingsCommandHandler(), c.config.RecountSchedule, c.logger)
}

type FuncSkillUoWFactory func() commands.SkillUoW

func (f FuncSkillUoWFactory) Create() commands.SkillUoW {
	return f()
}

type FuncDeveloperUoWFactory func() commands.DeveloperUoW

func (f FuncDeveloperUoWFactory) Create() commands.DeveloperUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
