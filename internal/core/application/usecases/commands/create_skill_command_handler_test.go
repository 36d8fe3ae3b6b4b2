package commands_test

import (
	"errors"
	"testing"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/skill"
	"devbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSkillCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateSkillCommand(id, "  terraform ")
	require.NoError(t, err)

	skills := new(MockSkillRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SkillRepository").Return(skills).Once(),
		skills.On("Add", ctx, mock.MatchedBy(func(s *skill.Skill) bool {
			return s.ID() == id && s.Name() == "terraform"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateSkillCommandHandler(mockSkillUoWFactory{uow})
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	skills.AssertExpectations(t)
}

func TestCreateSkillCommandHandler_Handle_BlankName(t *testing.T) {
	cmd, err := commands.NewCreateSkillCommand(kernel.NewUUID(), " ")
	require.NoError(t, err)
	uow := new(MockUoW)

	handler := commands.NewCreateSkillCommandHandler(mockSkillUoWFactory{uow})
	err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, skill.ErrNameIsRequired)
	assert.Equal(t, []string{"name"}, errs.FailedAttributes(err))
	uow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestCreateSkillCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateSkillCommand(kernel.NewUUID(), "go")
	boom := errors.New("duplicate")

	skills := new(MockSkillRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SkillRepository").Return(skills).Once()
	skills.On("Add", ctx, mock.Anything).Return(boom).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewCreateSkillCommandHandler(mockSkillUoWFactory{uow})
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, boom)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
