package commands_test

import (
	"testing"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/project"
	"devbook/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	developerID := kernel.NewUUID()
	projectID := kernel.NewUUID()
	cmd, err := commands.NewCreateProjectCommand(projectID, developerID, "Ledger", "Double entry bookkeeping")
	require.NoError(t, err)

	developers := new(MockDeveloperRepository)
	projects := new(MockProjectRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeveloperRepository").Return(developers).Once(),
		developers.On("Get", ctx, developerID).Return(storedDeveloper(developerID, storedSkill("go")), nil).Once(),
		uow.On("ProjectRepository").Return(projects).Once(),
		projects.On("Add", ctx, mock.MatchedBy(func(p *project.Project) bool {
			return p.ID() == projectID && p.DeveloperID() == developerID && p.Name() == "Ledger"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateProjectCommandHandler(mockUoWFactory{uow})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	projects.AssertExpectations(t)
}

func TestCreateProjectCommandHandler_Handle_NameRequired(t *testing.T) {
	cmd, err := commands.NewCreateProjectCommand(kernel.NewUUID(), kernel.NewUUID(), "", "")
	require.NoError(t, err)
	uow := new(MockUoW)

	handler := commands.NewCreateProjectCommandHandler(mockUoWFactory{uow})
	err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestNewCreateProjectCommand_InvalidDeveloperID(t *testing.T) {
	_, err := commands.NewCreateProjectCommand(kernel.NewUUID(), kernel.UUID{}, "Ledger", "")

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
