package http

import (
	"net/http"
	"strings"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/application/usecases/queries"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/ports"
	"devbook/internal/generated/servers"
	"devbook/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// ListDevelopers handles GET /api/v1/developers.
// A skill term and a rate range are mutually exclusive filters.
func (s *Server) ListDevelopers(ctx echo.Context, params servers.ListDevelopersParams) error {
	sort, err := ports.ParseSort(deref(params.Sort))
	if err != nil {
		return writeError(ctx, err)
	}

	minRate, hasMin, err := parseMoney(params.MinRate)
	if err != nil {
		return writeValidation(ctx, "min_rate")
	}
	maxRate, hasMax, err := parseMoney(params.MaxRate)
	if err != nil {
		return writeValidation(ctx, "max_rate")
	}
	hasRange := hasMin || hasMax

	var developers []queries.DeveloperResponse
	switch {
	case params.Skill != nil && hasRange:
		return writeMessage(ctx, http.StatusBadRequest, "skill cannot be combined with min_rate or max_rate")
	case params.Skill != nil:
		query := queries.NewFindDevelopersBySkillQuery(*params.Skill, sort)
		developers, err = s.handlers.FindDevelopersBySkill.Handle(ctx.Request().Context(), query)
	case hasRange:
		if !hasMax {
			maxRate = commands.MaxHourlyRate
		}
		if !hasMin {
			minRate = decimal.Zero
		}
		query := queries.NewFindDevelopersByPriceRangeQuery(minRate, maxRate, sort)
		developers, err = s.handlers.FindDevelopersByPriceRange.Handle(ctx.Request().Context(), query)
	default:
		developers, err = s.handlers.ListDevelopers.Handle(ctx.Request().Context(), queries.NewListDevelopersQuery(sort))
	}
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDevelopers(developers))
}

// GetTopDevelopers handles GET /api/v1/developers/top.
func (s *Server) GetTopDevelopers(ctx echo.Context) error {
	developers, err := s.handlers.GetTopDevelopers.Handle(ctx.Request().Context(), queries.NewGetTopDevelopersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDevelopers(developers))
}

// CreateDeveloper handles POST /api/v1/developers and responds with the stored profile.
func (s *Server) CreateDeveloper(ctx echo.Context) error {
	var body servers.CreateDeveloperJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeMessage(ctx, http.StatusBadRequest, "Invalid request body")
	}

	profile, attribute, err := toProfile(body)
	if err != nil {
		return writeValidation(ctx, attribute)
	}

	developerID := kernel.NewUUID()
	cmd, err := commands.NewCreateDeveloperCommand(developerID, profile)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateDeveloper.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	metrics.DevelopersCreated.Inc()

	return s.respondWithDeveloper(ctx, http.StatusCreated, developerID)
}

// GetDeveloper handles GET /api/v1/developers/{developerId}.
func (s *Server) GetDeveloper(ctx echo.Context, developerId servers.DeveloperId) error {
	id, err := toKernelUUID(developerId)
	if err != nil {
		return writeMessage(ctx, http.StatusNotFound, err.Error())
	}

	return s.respondWithDeveloper(ctx, http.StatusOK, id)
}

// UpdateDeveloper handles PUT /api/v1/developers/{developerId}.
// The body replaces the whole profile including the skill list.
func (s *Server) UpdateDeveloper(ctx echo.Context, developerId servers.DeveloperId) error {
	id, err := toKernelUUID(developerId)
	if err != nil {
		return writeMessage(ctx, http.StatusNotFound, err.Error())
	}

	var body servers.UpdateDeveloperJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeMessage(ctx, http.StatusBadRequest, "Invalid request body")
	}

	profile, attribute, err := toProfile(body)
	if err != nil {
		return writeValidation(ctx, attribute)
	}

	cmd, err := commands.NewUpdateDeveloperCommand(id, profile)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateDeveloper.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithDeveloper(ctx, http.StatusOK, id)
}

// DeleteDeveloper handles DELETE /api/v1/developers/{developerId}.
func (s *Server) DeleteDeveloper(ctx echo.Context, developerId servers.DeveloperId) error {
	id, err := toKernelUUID(developerId)
	if err != nil {
		return writeMessage(ctx, http.StatusNotFound, err.Error())
	}

	cmd, err := commands.NewDeleteDeveloperCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteDeveloper.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUnavailableDates handles GET /api/v1/developers/{developerId}/unavailable-dates.
func (s *Server) GetUnavailableDates(ctx echo.Context, developerId servers.DeveloperId) error {
	id, err := toKernelUUID(developerId)
	if err != nil {
		return writeMessage(ctx, http.StatusNotFound, err.Error())
	}

	query, err := queries.NewGetUnavailableDatesQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	ranges, err := s.handlers.GetUnavailableDates.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDateRanges(ranges))
}

// CreateBooking handles POST /api/v1/developers/{developerId}/bookings.
func (s *Server) CreateBooking(ctx echo.Context, developerId servers.DeveloperId) error {
	id, err := toKernelUUID(developerId)
	if err != nil {
		return writeMessage(ctx, http.StatusNotFound, err.Error())
	}

	var body servers.CreateBookingJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeMessage(ctx, http.StatusBadRequest, "Invalid request body")
	}

	userID, err := toOptionalKernelUUID(body.UserId)
	if err != nil {
		return writeValidation(ctx, "user_id")
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(bookingID, id, userID, body.StartDate.Time, body.EndDate.Time)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	metrics.BookingsCreated.Inc()

	return ctx.JSON(http.StatusCreated, servers.Created{Id: bookingID.Bytes()})
}

// CreateProject handles POST /api/v1/developers/{developerId}/projects.
func (s *Server) CreateProject(ctx echo.Context, developerId servers.DeveloperId) error {
	id, err := toKernelUUID(developerId)
	if err != nil {
		return writeMessage(ctx, http.StatusNotFound, err.Error())
	}

	var body servers.CreateProjectJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return writeMessage(ctx, http.StatusBadRequest, "Invalid request body")
	}

	projectID := kernel.NewUUID()
	cmd, err := commands.NewCreateProjectCommand(projectID, id, body.Name, deref(body.Description))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateProject.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: projectID.Bytes()})
}

// CreateSkill handles POST /api/v1/skills. A taken name is reported as an invalid name.
func (s *Server) CreateSkill(ctx echo.Context) error {
	var body servers.CreateSkillJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return writeMessage(ctx, http.StatusBadRequest, "Invalid request body")
	}

	skillID := kernel.NewUUID()
	cmd, err := commands.NewCreateSkillCommand(skillID, body.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateSkill.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Skill{
		Id:   skillID.Bytes(),
		Name: strings.TrimSpace(body.Name),
	})
}

func (s *Server) respondWithDeveloper(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetDeveloperQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	details, err := s.handlers.GetDeveloper.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toDeveloperDetails(details))
}
