package skill

import (
	"errors"
	"strings"

	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/pkg/errs"
	"devbook/internal/pkg/guard"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrNameIsRequired        = errs.NewValueIsRequiredError("name")
	ErrSkillIsNotConstructed = errors.New("Skill must be created via NewSkill constructor")
)

// Skill is a named competence such as "go lang" or "ruby".
// The name is stored as given (trimmed); DisplayName renders it title-cased.
type Skill struct {
	id   kernel.UUID
	name string

	guard guard.ConstructorGuard
}

// NewSkill creates a skill. The name is trimmed and must not be blank.
func NewSkill(id kernel.UUID, name string) (*Skill, error) {
	s := &Skill{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSkill rebuilds a skill loaded from storage.
func RestoreSkill(id kernel.UUID, name string) (*Skill, error) {
	return NewSkill(id, name)
}

// Validate ensures the skill was created through NewSkill.
func (s *Skill) Validate() error {
	if s == nil {
		return ErrSkillIsNotConstructed
	}
	return s.guard.Validate(ErrSkillIsNotConstructed)
}

// IsEqual compares skills by identifier.
func (s *Skill) IsEqual(other *Skill) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the skill identifier.
func (s *Skill) ID() kernel.UUID {
	return s.id
}

// Name returns the stored skill name.
func (s *Skill) Name() string {
	return s.name
}

// DisplayName returns the title-cased skill name.
func (s *Skill) DisplayName() string {
	return Titleize(s.name)
}

var wordSeparators = strings.NewReplacer("_", " ", "-", " ")

// Titleize upper-cases the first letter of every word and lower-cases the rest.
// Underscores and hyphens become spaces. "go lang" becomes "Go Lang",
// "RUBY_ON_RAILS" becomes "Ruby On Rails" and "go-lang" becomes "Go Lang".
func Titleize(name string) string {
	// A Caser keeps state between calls, so each call gets its own.
	return cases.Title(language.English).String(wordSeparators.Replace(name))
}

func (s *Skill) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Skill) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}
