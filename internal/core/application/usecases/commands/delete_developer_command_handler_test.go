package commands_test

import (
	"errors"
	"testing"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteDeveloperCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteDeveloperCommand(kernel.UUID{})

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestDeleteDeveloperCommandHandler_Handle_DeletesOwnedRowsFirst(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteDeveloperCommand(id)
	require.NoError(t, err)

	bookings := new(MockBookingRepository)
	projects := new(MockProjectRepository)
	developers := new(MockDeveloperRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BookingRepository").Return(bookings).Once(),
		bookings.On("DeleteByDeveloper", ctx, id).Return(nil).Once(),
		uow.On("ProjectRepository").Return(projects).Once(),
		projects.On("DeleteByDeveloper", ctx, id).Return(nil).Once(),
		uow.On("DeveloperRepository").Return(developers).Once(),
		developers.On("Delete", ctx, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeleteDeveloperCommandHandler(mockUoWFactory{uow})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	bookings.AssertExpectations(t)
	projects.AssertExpectations(t)
	developers.AssertExpectations(t)
}

func TestDeleteDeveloperCommandHandler_Handle_MissingDeveloperRollsBack(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteDeveloperCommand(id)

	bookings := new(MockBookingRepository)
	projects := new(MockProjectRepository)
	developers := new(MockDeveloperRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookings).Once()
	bookings.On("DeleteByDeveloper", ctx, id).Return(nil).Once()
	uow.On("ProjectRepository").Return(projects).Once()
	projects.On("DeleteByDeveloper", ctx, id).Return(nil).Once()
	uow.On("DeveloperRepository").Return(developers).Once()
	developers.On("Delete", ctx, id).Return(errs.NewObjectNotFoundError("developer", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDeleteDeveloperCommandHandler(mockUoWFactory{uow})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeleteDeveloperCommandHandler_Handle_BookingDeleteError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewDeleteDeveloperCommand(id)
	boom := errors.New("lock timeout")

	bookings := new(MockBookingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BookingRepository").Return(bookings).Once()
	bookings.On("DeleteByDeveloper", ctx, id).Return(boom).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewDeleteDeveloperCommandHandler(mockUoWFactory{uow})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, boom)
	uow.AssertExpectations(t)
}
