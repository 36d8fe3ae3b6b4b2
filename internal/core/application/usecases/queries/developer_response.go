package queries

import (
	"time"

	"devbook/internal/core/domain/model/developer"
	"devbook/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeveloperResponse is the list view of a developer.
type DeveloperResponse struct {
	ID             kernel.UUID
	UserID         *kernel.UUID
	FirstName      string
	LastName       string
	FullName       string
	GithubUsername string
	HourlyRate     decimal.Decimal
	BookingsCount  int
	Skills         []string
	SkillsToS      string
}

// DateRangeResponse is one unavailable period, both days inclusive.
type DateRangeResponse struct {
	From time.Time
	To   time.Time
}

// ProjectResponse is a project in the developer details view.
type ProjectResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
}

func newDeveloperResponse(d *developer.Developer) DeveloperResponse {
	skills := make([]string, 0, len(d.Skills()))
	for _, s := range d.Skills() {
		skills = append(skills, s.Name())
	}

	return DeveloperResponse{
		ID:             d.ID(),
		UserID:         d.UserID(),
		FirstName:      d.FirstName(),
		LastName:       d.LastName(),
		FullName:       d.FullName(),
		GithubUsername: d.GithubUsername(),
		HourlyRate:     d.HourlyRate(),
		BookingsCount:  d.BookingsCount(),
		Skills:         skills,
		SkillsToS:      d.SkillsToS(),
	}
}

func newDeveloperResponses(developers []*developer.Developer) []DeveloperResponse {
	responses := make([]DeveloperResponse, 0, len(developers))
	for _, d := range developers {
		responses = append(responses, newDeveloperResponse(d))
	}
	return responses
}

func newDateRangeResponses(ranges []kernel.DateRange) []DateRangeResponse {
	responses := make([]DateRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		responses = append(responses, DateRangeResponse{From: r.From(), To: r.To()})
	}
	return responses
}
