package commands_test

import (
	"testing"
	"time"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/domain/model/booking"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateBookingCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(kernel.UUID{}, kernel.UUID{}, nil, time.Now(), time.Now())

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateBookingCommandHandler_Handle_IncrementsCounter(t *testing.T) {
	ctx := t.Context()
	developerID := kernel.NewUUID()
	bookingID := kernel.NewUUID()
	start := time.Date(2024, 7, 10, 15, 30, 0, 0, time.UTC)
	end := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewCreateBookingCommand(bookingID, developerID, nil, start, end)
	require.NoError(t, err)

	developers := new(MockDeveloperRepository)
	bookings := new(MockBookingRepository)
	uow := new(MockUoW)
	var saved *booking.Booking
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeveloperRepository").Return(developers).Once(),
		developers.On("Get", ctx, developerID).Return(storedDeveloper(developerID, storedSkill("go")), nil).Once(),
		uow.On("BookingRepository").Return(bookings).Once(),
		bookings.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*booking.Booking) }).
			Return(nil).Once(),
		developers.On("IncrementBookingsCount", ctx, developerID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateBookingCommandHandler(mockUoWFactory{uow})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, bookingID, saved.ID())
	assert.Equal(t, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC), saved.StartDate())
	assert.Equal(t, end, saved.EndDate())
	uow.AssertExpectations(t)
	developers.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_UnknownDeveloper(t *testing.T) {
	ctx := t.Context()
	developerID := kernel.NewUUID()
	cmd, _ := commands.NewCreateBookingCommand(kernel.NewUUID(), developerID, nil, time.Now(), time.Now())

	developers := new(MockDeveloperRepository)
	bookings := new(MockBookingRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeveloperRepository").Return(developers).Once()
	developers.On("Get", ctx, developerID).Return(nil, errs.NewObjectNotFoundError("developer", developerID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateBookingCommandHandler(mockUoWFactory{uow})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	bookings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateBookingCommandHandler_Handle_MissingDates(t *testing.T) {
	cmd, _ := commands.NewCreateBookingCommand(kernel.NewUUID(), kernel.NewUUID(), nil, time.Time{}, time.Time{})
	uow := new(MockUoW)

	handler := commands.NewCreateBookingCommandHandler(mockUoWFactory{uow})
	err := handler.Handle(t.Context(), cmd)

	require.True(t, errs.IsValidationFailure(err))
	assert.Equal(t, []string{"start_date", "end_date"}, errs.FailedAttributes(err))
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}
