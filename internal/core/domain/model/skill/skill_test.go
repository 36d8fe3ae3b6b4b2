package skill_test

import (
	"testing"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/skill"
	"devbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkill(t *testing.T) {
	t.Run("should create skill with trimmed name", func(t *testing.T) {
		id := kernel.NewUUID()

		s, err := skill.NewSkill(id, "  go lang ")

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "go lang", s.Name())
	})

	t.Run("should reject blank name", func(t *testing.T) {
		s, err := skill.NewSkill(kernel.NewUUID(), "   ")

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, []string{"name"}, errs.FailedAttributes(err))
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := skill.NewSkill(kernel.UUID{}, "ruby")

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestSkill_Validate(t *testing.T) {
	var s skill.Skill
	require.ErrorIs(t, s.Validate(), skill.ErrSkillIsNotConstructed)

	var nilSkill *skill.Skill
	require.ErrorIs(t, nilSkill.Validate(), skill.ErrSkillIsNotConstructed)
}

func TestTitleize(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Ruby", "Ruby"},
		{"go lang", "Go Lang"},
		{"RUBY", "Ruby"},
		{"jAVAsCRIPT", "Javascript"},
		{"ruby_on_rails", "Ruby On Rails"},
		{"go-lang", "Go Lang"},
		{"react-native_ios", "React Native Ios"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, skill.Titleize(tc.input))
		})
	}
}

func TestSkill_DisplayName(t *testing.T) {
	s, err := skill.NewSkill(kernel.NewUUID(), "postgre sql")
	require.NoError(t, err)

	assert.Equal(t, "Postgre Sql", s.DisplayName())
}
