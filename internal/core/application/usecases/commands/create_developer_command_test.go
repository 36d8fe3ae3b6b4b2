package commands_test

import (
	"testing"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateDeveloperCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateDeveloperCommand(id, validProfile(" ruby ", "", "go", "ruby"))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, id, cmd.DeveloperID())
	assert.Equal(t, []string{"ruby", "go"}, cmd.Profile().SkillNames)
}

func TestNewCreateDeveloperCommand_InvalidDeveloperID(t *testing.T) {
	_, err := commands.NewCreateDeveloperCommand(kernel.UUID{}, validProfile("ruby"))

	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateDeveloperCommand_HourlyRateOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		rate string
	}{
		{"negative", "-0.01"},
		{"too large", "100000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := validProfile("ruby")
			profile.HourlyRate = decimal.RequireFromString(tt.rate)

			_, err := commands.NewCreateDeveloperCommand(kernel.NewUUID(), profile)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			assert.Equal(t, []string{"hourly_rate"}, errs.FailedAttributes(err))
		})
	}
}

func TestNewCreateDeveloperCommand_InvalidUserID(t *testing.T) {
	profile := validProfile("ruby")
	profile.UserID = &kernel.UUID{}

	_, err := commands.NewCreateDeveloperCommand(kernel.NewUUID(), profile)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, []string{"user_id"}, errs.FailedAttributes(err))
}

func TestCreateDeveloperCommand_ZeroValueIsNotConstructed(t *testing.T) {
	cmd := commands.CreateDeveloperCommand{}

	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateDeveloperCommandIsNotConstructed)
}
