package http

import (
	"strings"

	"devbook/internal/core/application/usecases/commands"
	"devbook/internal/core/application/usecases/queries"
	"devbook/internal/core/domain/model/kernel"
	"devbook/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

const hourlyRateAttribute = "hourly_rate"

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalKernelUUID(id *openapi_types.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	converted, err := toKernelUUID(*id)
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

func fromOptionalKernelUUID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}

	converted := id.Bytes()
	return &converted
}

// parseMoney accepts a plain decimal string. Blank input yields ok == false.
func parseMoney(value *servers.Money) (decimal.Decimal, bool, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return decimal.Zero, false, nil
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(*value))
	if err != nil {
		return decimal.Zero, false, err
	}
	return amount, true, nil
}

func formatMoney(amount decimal.Decimal) servers.Money {
	return amount.StringFixed(2)
}

func deref[T any](value *T) T {
	var zero T
	if value == nil {
		return zero
	}
	return *value
}

// toProfile converts a request body. A missing hourly rate is stored as zero.
// The second return value names the attribute that could not be parsed.
func toProfile(body servers.DeveloperInput) (commands.DeveloperProfile, string, error) {
	userID, err := toOptionalKernelUUID(body.UserId)
	if err != nil {
		return commands.DeveloperProfile{}, "user_id", err
	}

	rate, _, err := parseMoney(body.HourlyRate)
	if err != nil {
		return commands.DeveloperProfile{}, hourlyRateAttribute, err
	}

	return commands.DeveloperProfile{
		UserID:         userID,
		FirstName:      deref(body.FirstName),
		LastName:       deref(body.LastName),
		Bio:            deref(body.Bio),
		GithubUsername: deref(body.GithubUsername),
		HourlyRate:     rate,
		SkillNames:     deref(body.Skills),
	}, "", nil
}

func toDeveloper(d queries.DeveloperResponse) servers.Developer {
	skills := d.Skills
	if skills == nil {
		skills = []string{}
	}

	return servers.Developer{
		Id:             d.ID.Bytes(),
		UserId:         fromOptionalKernelUUID(d.UserID),
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		FullName:       d.FullName,
		GithubUsername: d.GithubUsername,
		HourlyRate:     formatMoney(d.HourlyRate),
		BookingsCount:  d.BookingsCount,
		Skills:         skills,
		SkillsToS:      d.SkillsToS,
	}
}

func toDevelopers(developers []queries.DeveloperResponse) []servers.Developer {
	response := make([]servers.Developer, len(developers))
	for i, d := range developers {
		response[i] = toDeveloper(d)
	}
	return response
}

func toDateRanges(ranges []queries.DateRangeResponse) []servers.DateRange {
	response := make([]servers.DateRange, len(ranges))
	for i, r := range ranges {
		response[i] = servers.DateRange{
			From: openapi_types.Date{Time: r.From},
			To:   openapi_types.Date{Time: r.To},
		}
	}
	return response
}

func toDeveloperDetails(details queries.GetDeveloperQueryResponse) servers.DeveloperDetails {
	developer := toDeveloper(details.DeveloperResponse)

	projects := make([]servers.Project, len(details.Projects))
	for i, p := range details.Projects {
		projects[i] = servers.Project{
			Id:          p.ID.Bytes(),
			Name:        p.Name,
			Description: p.Description,
		}
	}

	return servers.DeveloperDetails{
		Id:               developer.Id,
		UserId:           developer.UserId,
		FirstName:        developer.FirstName,
		LastName:         developer.LastName,
		FullName:         developer.FullName,
		GithubUsername:   developer.GithubUsername,
		HourlyRate:       developer.HourlyRate,
		BookingsCount:    developer.BookingsCount,
		Skills:           developer.Skills,
		SkillsToS:        developer.SkillsToS,
		Bio:              details.Bio,
		Projects:         projects,
		UnavailableDates: toDateRanges(details.UnavailableDates),
	}
}
