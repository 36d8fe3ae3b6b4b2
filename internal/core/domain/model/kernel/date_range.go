package kernel

import "time"

// DateRange is a from/to pair of calendar dates. Both ends are normalized to
// midnight UTC. The range is taken as given: From after To is kept as is.
type DateRange struct {
	from time.Time
	to   time.Time
}

// NewDateRange builds a DateRange from two points in time, dropping the clock part.
func NewDateRange(from, to time.Time) DateRange {
	return DateRange{
		from: DateOf(from),
		to:   DateOf(to),
	}
}

// DateOf truncates t to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// From returns the first day of the range.
func (r DateRange) From() time.Time {
	return r.from
}

// To returns the last day of the range.
func (r DateRange) To() time.Time {
	return r.to
}
