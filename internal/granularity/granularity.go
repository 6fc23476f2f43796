// Package granularity defines the YEAR/MONTH/DATE resolutions a picker
// selects at and the drill navigation between them.
package granularity

import (
	"fmt"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

// Granularity is the resolution at which a date is displayed or selected.
// Coarser granularities compare lower.
type Granularity int

const (
	Year Granularity = iota
	Month
	Date
)

func (g Granularity) String() string {
	switch g {
	case Year:
		return "year"
	case Month:
		return "month"
	case Date:
		return "date"
	default:
		return fmt.Sprintf("granularity(%d)", int(g))
	}
}

func (g Granularity) Valid() bool {
	return g >= Year && g <= Date
}

// Parse accepts year, month or date (also day), case-insensitively.
func Parse(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year":
		return Year, nil
	case "month":
		return Month, nil
	case "date", "day":
		return Date, nil
	}
	return 0, fmt.Errorf("unknown granularity %q (expected year, month or date)", s)
}

// finer returns the next finer granularity, or g itself at Date.
func (g Granularity) finer() Granularity {
	if g >= Date {
		return Date
	}
	return g + 1
}

// coarser returns the next coarser granularity, or g itself at Year.
func (g Granularity) coarser() Granularity {
	if g <= Year {
		return Year
	}
	return g - 1
}

// DaysIn returns the number of days in the month of t.
func DaysIn(year int, month time.Month) int {
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// Truncate returns the first instant of the g-sized period containing t,
// in t's location.
func Truncate(t time.Time, g Granularity) time.Time {
	switch g {
	case Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	case Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}

// Span returns the first and last instant (millisecond resolution) of the
// g-sized period containing t.
func Span(t time.Time, g Granularity) (start, end time.Time) {
	start = Truncate(t, g)
	switch g {
	case Year:
		end = time.Date(t.Year(), time.December, 31, 23, 59, 59, int(999*time.Millisecond), t.Location())
	case Month:
		end = time.Date(t.Year(), t.Month(), DaysIn(t.Year(), t.Month()), 23, 59, 59, int(999*time.Millisecond), t.Location())
	default:
		end = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
	}
	return start, end
}

// SpanMillis is Span expressed as epoch milliseconds.
func SpanMillis(t time.Time, g Granularity) (start, end int64) {
	s, e := Span(t, g)
	return s.UnixMilli(), e.UnixMilli()
}

// Same reports whether a and b fall in the same g-sized period. b is
// compared in a's location.
func Same(a, b time.Time, g Granularity) bool {
	b = b.In(a.Location())
	switch g {
	case Year:
		return a.Year() == b.Year()
	case Month:
		return a.Year() == b.Year() && a.Month() == b.Month()
	default:
		return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
	}
}
