package developerrepo

import (
	"strings"

	"devbook/internal/core/ports"

	"github.com/lib/pq"
)

// orderClause renders sort as an ORDER BY list over the developers table.
// Fields are quoted identifiers; id is always appended as the final tiebreak.
func orderClause(sort ports.SortBy) string {
	sort = sort.OrDefault()

	columns := make([]string, 0, len(sort)+1)
	for _, key := range sort {
		direction := string(ports.Asc)
		if key.Direction == ports.Desc {
			direction = string(ports.Desc)
		}
		columns = append(columns, "developers."+pq.QuoteIdentifier(string(key.Field))+" "+direction)
	}
	columns = append(columns, "developers.id ASC")

	return strings.Join(columns, ", ")
}

// likePattern builds an ILIKE pattern matching term anywhere in a value.
// Wildcards in term are escaped so they match literally.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}
