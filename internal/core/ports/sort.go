package ports

import (
	"strings"

	"devbook/internal/pkg/errs"
)

// SortField names a developer column that listings can be ordered by.
type SortField string

const (
	SortByHourlyRate     SortField = "hourly_rate"
	SortByBookingsCount  SortField = "bookings_count"
	SortByFirstName      SortField = "first_name"
	SortByLastName       SortField = "last_name"
	SortByGithubUsername SortField = "github_username"
	SortByCreatedAt      SortField = "created_at"
)

// SortDirection is ascending or descending.
type SortDirection string

const (
	Asc  SortDirection = "ASC"
	Desc SortDirection = "DESC"
)

// SortKey orders by one field.
type SortKey struct {
	Field     SortField
	Direction SortDirection
}

// SortBy is an ordered list of sort keys. Repositories apply it as given and
// break remaining ties by id, so equal keys still come back in a stable order.
type SortBy []SortKey

// TopDevelopersLimit is the size of the top developers listing.
const TopDevelopersLimit = 6

var (
	// DefaultSort is applied to developer listings that do not ask for an order.
	DefaultSort = SortBy{{Field: SortByHourlyRate, Direction: Desc}}

	// TopSort ranks developers by popularity; it replaces DefaultSort, it does not extend it.
	TopSort = SortBy{
		{Field: SortByBookingsCount, Direction: Desc},
		{Field: SortByHourlyRate, Direction: Desc},
	}
)

var sortFields = map[SortField]struct{}{
	SortByHourlyRate:     {},
	SortByBookingsCount:  {},
	SortByFirstName:      {},
	SortByLastName:       {},
	SortByGithubUsername: {},
	SortByCreatedAt:      {},
}

// ParseSort reads a comma separated list of fields, each optionally prefixed
// with "-" for descending order: "-bookings_count,hourly_rate".
// An empty string yields DefaultSort.
func ParseSort(raw string) (SortBy, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultSort, nil
	}

	parts := strings.Split(raw, ",")
	sort := make(SortBy, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		direction := Asc
		if strings.HasPrefix(part, "-") {
			direction = Desc
			part = strings.TrimPrefix(part, "-")
		}

		field := SortField(part)
		if _, ok := sortFields[field]; !ok {
			return nil, errs.NewValueIsInvalidError("sort")
		}
		sort = append(sort, SortKey{Field: field, Direction: direction})
	}

	return sort, nil
}

// OrDefault returns s, or DefaultSort when s is empty.
func (s SortBy) OrDefault() SortBy {
	if len(s) == 0 {
		return DefaultSort
	}
	return s
}

// String renders the sort in the form accepted by ParseSort.
func (s SortBy) String() string {
	parts := make([]string, 0, len(s))
	for _, key := range s {
		prefix := ""
		if key.Direction == Desc {
			prefix = "-"
		}
		parts = append(parts, prefix+string(key.Field))
	}
	return strings.Join(parts, ",")
}
