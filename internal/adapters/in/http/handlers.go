package http

import (
	"context"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/application/usecases/queries"
)

type (
	CreateDeveloperHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDeveloperCommand) error
	}
	UpdateDeveloperHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateDeveloperCommand) error
	}
	DeleteDeveloperHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteDeveloperCommand) error
	}
	CreateSkillHandler interface {
		Handle(ctx context.Context, cmd commands.CreateSkillCommand) error
	}
	CreateBookingHandler interface {
		Handle(ctx context.Context, cmd commands.CreateBookingCommand) error
	}
	CreateProjectHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProjectCommand) error
	}
)

type (
	GetDeveloperHandler interface {
		Handle(ctx context.Context, query queries.GetDeveloperQuery) (queries.GetDeveloperQueryResponse, error)
	}
	ListDevelopersHandler interface {
		Handle(ctx context.Context, query queries.ListDevelopersQuery) ([]queries.DeveloperResponse, error)
	}
	FindDevelopersBySkillHandler interface {
		Handle(ctx context.Context, query queries.FindDevelopersBySkillQuery) ([]queries.DeveloperResponse, error)
	}
	FindDevelopersByPriceRangeHandler interface {
		Handle(ctx context.Context, query queries.FindDevelopersByPriceRangeQuery) ([]queries.DeveloperResponse, error)
	}
	GetTopDevelopersHandler interface {
		Handle(ctx context.Context, query queries.GetTopDevelopersQuery) ([]queries.DeveloperResponse, error)
	}
	GetUnavailableDatesHandler interface {
		Handle(ctx context.Context, query queries.GetUnavailableDatesQuery) ([]queries.DateRangeResponse, error)
	}
)

// Handlers groups the use cases the server delegates to.
// Every field is required.
type Handlers struct {
	// Command handlers
	CreateDeveloper CreateDeveloperHandler
	UpdateDeveloper UpdateDeveloperHandler
	DeleteDeveloper DeleteDeveloperHandler
	CreateSkill     CreateSkillHandler
	CreateBooking   CreateBookingHandler
	CreateProject   CreateProjectHandler

	// Query handlers
	GetDeveloper               GetDeveloperHandler
	ListDevelopers             ListDevelopersHandler
	FindDevelopersBySkill      FindDevelopersBySkillHandler
	FindDevelopersByPriceRange FindDevelopersByPriceRangeHandler
	GetTopDevelopers           GetTopDevelopersHandler
	GetUnavailableDates        GetUnavailableDatesHandler
}
