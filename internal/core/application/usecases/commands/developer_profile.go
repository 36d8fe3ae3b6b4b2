package commands

import (
	"context"
	"errors"
	"strings"

	"devbook/internal/core/domain/model/developer"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/skill"
	"devbook/internal/core/ports"
	"devbook/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxHourlyRate is the largest rate the numeric(10,2) column can hold.
var MaxHourlyRate = decimal.RequireFromString("99999999.99")

// DeveloperProfile carries the editable fields shared by the create and update commands.
// Presence rules are left to the developer aggregate so that every failing attribute
// is reported at once.
type DeveloperProfile struct {
	UserID         *kernel.UUID
	FirstName      string
	LastName       string
	Bio            string
	GithubUsername string
	HourlyRate     decimal.Decimal
	SkillNames     []string
}

func (p DeveloperProfile) attributes() developer.Attributes {
	return developer.Attributes{
		UserID:         p.UserID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Bio:            p.Bio,
		GithubUsername: p.GithubUsername,
		HourlyRate:     p.HourlyRate,
	}
}

func (p DeveloperProfile) validate() error {
	var userErr error
	if p.UserID != nil {
		if err := p.UserID.Validate(); err != nil {
			userErr = errs.NewValueIsInvalidErrorWithCause("user_id", err)
		}
	}

	var rateErr error
	if p.HourlyRate.IsNegative() || p.HourlyRate.GreaterThan(MaxHourlyRate) {
		rateErr = errs.NewValueIsOutOfRangeError("hourly_rate", p.HourlyRate.String(), "0", MaxHourlyRate.String())
	}

	return errors.Join(userErr, rateErr)
}

// normalizedSkillNames trims names, drops blanks and keeps the first of each repeated name.
func normalizedSkillNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		result = append(result, name)
	}
	return result
}

// resolvedSkills are the skills named by a command, split into those already
// stored and those that must be created before the developer is saved.
type resolvedSkills struct {
	all     []*skill.Skill
	created []*skill.Skill
}

// resolveSkills looks every name up and builds the missing skills in memory.
// Nothing is written; call persist once the developer is known to be valid.
func resolveSkills(ctx context.Context, repo ports.SkillRepository, names []string) (resolvedSkills, error) {
	resolved := resolvedSkills{
		all: make([]*skill.Skill, 0, len(names)),
	}

	for _, name := range names {
		existing, err := repo.GetByName(ctx, name)
		if err == nil {
			resolved.all = append(resolved.all, existing)
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return resolvedSkills{}, err
		}

		created, err := skill.NewSkill(kernel.NewUUID(), name)
		if err != nil {
			return resolvedSkills{}, err
		}
		resolved.all = append(resolved.all, created)
		resolved.created = append(resolved.created, created)
	}

	return resolved, nil
}

func (r resolvedSkills) persist(ctx context.Context, repo ports.SkillRepository) error {
	for _, s := range r.created {
		if err := repo.Add(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
