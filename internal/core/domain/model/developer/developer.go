package developer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"devbook/internal/core/domain/model/booking"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/core/domain/model/skill"
	"devbook/internal/pkg/errs"
	"devbook/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// MinBioLength is the minimum bio length in characters (Unicode code points).
	MinBioLength = 44

	// SkillsSeparator joins skill names in SkillsToS.
	SkillsSeparator = " | "
)

var (
	ErrFirstNameIsRequired       = errs.NewValueIsRequiredError("first_name")
	ErrLastNameIsRequired        = errs.NewValueIsRequiredError("last_name")
	ErrSkillsAreRequired         = errs.NewValueIsRequiredError("skills")
	ErrGithubUsernameIsRequired  = errs.NewValueIsRequiredError("github_username")
	ErrBioIsRequired             = errs.NewValueIsRequiredError("bio")
	ErrDeveloperIsNotConstructed = errors.New("Developer must be created via NewDeveloper constructor")
)

// Attributes are the editable profile fields of a developer.
type Attributes struct {
	UserID         *kernel.UUID
	FirstName      string
	LastName       string
	Bio            string
	GithubUsername string
	HourlyRate     decimal.Decimal
}

// Developer is the aggregate root for a bookable developer profile.
type Developer struct {
	id             kernel.UUID
	userID         *kernel.UUID
	firstName      string
	lastName       string
	bio            string
	githubUsername string
	hourlyRate     decimal.Decimal
	bookingsCount  int
	skills         []*skill.Skill

	guard guard.ConstructorGuard
}

// NewDeveloper creates a developer after checking every invariant.
// Skills are attached in the given order; repeated skills are kept once.
//
// Example:
//
//	ruby, _ := skill.NewSkill(kernel.NewUUID(), "ruby")
//	dev, err := developer.NewDeveloper(kernel.NewUUID(), developer.Attributes{
//	    FirstName:      "Ada",
//	    LastName:       "Lovelace",
//	    Bio:            "Analytical engine programmer with a taste for poetry.",
//	    GithubUsername: "ada",
//	    HourlyRate:     decimal.RequireFromString("120.00"),
//	}, []*skill.Skill{ruby})
//	if errs.IsValidationFailure(err) {
//	    fmt.Println(errs.FailedAttributes(err))
//	}
func NewDeveloper(id kernel.UUID, attrs Attributes, skills []*skill.Skill) (*Developer, error) {
	d := &Developer{
		guard: guard.NewConstructorGuard(),
	}

	if err := d.setID(id); err != nil {
		return nil, err
	}

	if err := d.apply(attrs, skills); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDeveloper rebuilds a developer loaded from storage. Only identifiers are
// checked; profile invariants are enforced again on the next save.
func RestoreDeveloper(
	id kernel.UUID,
	attrs Attributes,
	bookingsCount int,
	skills []*skill.Skill,
) (*Developer, error) {
	d := &Developer{
		firstName:      attrs.FirstName,
		lastName:       attrs.LastName,
		bio:            attrs.Bio,
		githubUsername: attrs.GithubUsername,
		hourlyRate:     attrs.HourlyRate,
		bookingsCount:  bookingsCount,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setUserID(attrs.UserID),
		d.setSkills(skills),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// Update replaces the profile and skills. On a validation failure nothing changes.
func (d *Developer) Update(attrs Attributes, skills []*skill.Skill) error {
	return d.apply(attrs, skills)
}

// Validate ensures the developer was built through a constructor and that its
// current state satisfies every invariant.
func (d *Developer) Validate() error {
	if d == nil {
		return ErrDeveloperIsNotConstructed
	}
	if err := d.guard.Validate(ErrDeveloperIsNotConstructed); err != nil {
		return err
	}
	return checkAttributes(d.Attributes(), d.skills)
}

// IsEqual compares developers by identifier.
func (d *Developer) IsEqual(other *Developer) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Developer) ID() kernel.UUID {
	return d.id
}

// UserID returns the linked user account, or nil.
func (d *Developer) UserID() *kernel.UUID {
	return d.userID
}

func (d *Developer) FirstName() string {
	return d.firstName
}

func (d *Developer) LastName() string {
	return d.lastName
}

func (d *Developer) Bio() string {
	return d.bio
}

func (d *Developer) GithubUsername() string {
	return d.githubUsername
}

func (d *Developer) HourlyRate() decimal.Decimal {
	return d.hourlyRate
}

// BookingsCount is the denormalized number of bookings, used for ranking.
func (d *Developer) BookingsCount() int {
	return d.bookingsCount
}

// Skills returns the attached skills in attachment order.
func (d *Developer) Skills() []*skill.Skill {
	skills := make([]*skill.Skill, len(d.skills))
	copy(skills, d.skills)
	return skills
}

// Attributes returns a copy of the editable profile fields.
func (d *Developer) Attributes() Attributes {
	return Attributes{
		UserID:         d.userID,
		FirstName:      d.firstName,
		LastName:       d.lastName,
		Bio:            d.bio,
		GithubUsername: d.githubUsername,
		HourlyRate:     d.hourlyRate,
	}
}

// FullName joins first and last name with a single space.
func (d *Developer) FullName() string {
	return d.firstName + " " + d.lastName
}

// SkillsToS renders the title-cased skill names joined by " | ",
// or "" when no skills are attached.
func (d *Developer) SkillsToS() string {
	names := make([]string, 0, len(d.skills))
	for _, s := range d.skills {
		names = append(names, s.DisplayName())
	}
	return strings.Join(names, SkillsSeparator)
}

// UnavailableDates returns one range per booking of this developer, in the order
// the bookings are given. Ranges are neither merged nor sorted.
func (d *Developer) UnavailableDates(bookings []*booking.Booking) []kernel.DateRange {
	dates := make([]kernel.DateRange, 0, len(bookings))
	for _, b := range bookings {
		if b == nil || !b.DeveloperID().IsEqual(d.id) {
			continue
		}
		dates = append(dates, b.Period())
	}
	return dates
}

func (d *Developer) apply(attrs Attributes, skills []*skill.Skill) error {
	skills = uniqueSkills(skills)
	if err := checkAttributes(attrs, skills); err != nil {
		return err
	}

	if err := d.setUserID(attrs.UserID); err != nil {
		return err
	}
	d.firstName = attrs.FirstName
	d.lastName = attrs.LastName
	d.bio = attrs.Bio
	d.githubUsername = attrs.GithubUsername
	d.hourlyRate = attrs.HourlyRate
	d.skills = skills
	return nil
}

func (d *Developer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Developer) setUserID(id *kernel.UUID) error {
	if id == nil {
		d.userID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user_id", err)
	}
	userID := *id
	d.userID = &userID
	return nil
}

func (d *Developer) setSkills(skills []*skill.Skill) error {
	for _, s := range skills {
		if err := s.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("skills", err)
		}
	}
	d.skills = uniqueSkills(skills)
	return nil
}

// checkAttributes joins one error per broken invariant.
func checkAttributes(attrs Attributes, skills []*skill.Skill) error {
	var err error

	if isBlank(attrs.FirstName) {
		err = errors.Join(err, ErrFirstNameIsRequired)
	}
	if isBlank(attrs.LastName) {
		err = errors.Join(err, ErrLastNameIsRequired)
	}
	if len(skills) == 0 {
		err = errors.Join(err, ErrSkillsAreRequired)
	}
	for _, s := range skills {
		if skillErr := s.Validate(); skillErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("skills", skillErr))
			break
		}
	}
	if isBlank(attrs.GithubUsername) {
		err = errors.Join(err, ErrGithubUsernameIsRequired)
	}
	if isBlank(attrs.Bio) {
		err = errors.Join(err, ErrBioIsRequired)
	} else if length := utf8.RuneCountInString(attrs.Bio); length < MinBioLength {
		err = errors.Join(err, errs.NewValueIsTooShortError("bio", length, MinBioLength))
	}
	if attrs.UserID != nil {
		if idErr := attrs.UserID.Validate(); idErr != nil {
			err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("user_id", idErr))
		}
	}

	return err
}

func uniqueSkills(skills []*skill.Skill) []*skill.Skill {
	unique := make([]*skill.Skill, 0, len(skills))
	seen := make(map[kernel.UUID]struct{}, len(skills))
	for _, s := range skills {
		if s == nil {
			unique = append(unique, s)
			continue
		}
		if _, ok := seen[s.ID()]; ok {
			continue
		}
		seen[s.ID()] = struct{}{}
		unique = append(unique, s)
	}
	return unique
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
