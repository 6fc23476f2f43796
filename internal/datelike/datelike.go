// Package datelike normalizes the loosely typed date inputs a picker accepts
// (epoch milliseconds, time values, calendar dates or nothing) into a single
// time.Time.
package datelike

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/datetime"
)

type kind int

const (
	kindNone kind = iota
	kindMillis
	kindTime
	kindCalendar
)

// Value is a tagged date input. The zero Value is None.
type Value struct {
	kind   kind
	millis int64
	t      time.Time
	cal    datetime.CalendarDate
}

// None is the absent date.
var None = Value{}

// Millis wraps an epoch millisecond timestamp.
func Millis(ms int64) Value { return Value{kind: kindMillis, millis: ms} }

// Time wraps a time value. The zero time is treated as None.
func Time(t time.Time) Value {
	if t.IsZero() {
		return None
	}
	return Value{kind: kindTime, t: t}
}

// Calendar wraps a calendar date; it resolves to midnight in the caller's
// location.
func Calendar(cd datetime.CalendarDate) Value { return Value{kind: kindCalendar, cal: cd} }

// YMD is shorthand for Calendar with a time.Month.
func YMD(year int, month time.Month, day int) Value {
	return Calendar(datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: day})
}

func (v Value) IsNone() bool { return v.kind == kindNone }

// InvalidDateError reports a calendar date that does not exist.
type InvalidDateError struct {
	Date datetime.CalendarDate
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid calendar date %04d-%02d-%02d", e.Date.Year, int(e.Date.Month), e.Date.Day)
}

// Resolve returns the value as a time in loc. ok is false for None.
func (v Value) Resolve(loc *time.Location) (t time.Time, ok bool, err error) {
	if loc == nil {
		loc = time.Local
	}
	switch v.kind {
	case kindMillis:
		return time.UnixMilli(v.millis).In(loc), true, nil
	case kindTime:
		return v.t.In(loc), true, nil
	case kindCalendar:
		if !ValidCalendarDate(v.cal) {
			return time.Time{}, false, &InvalidDateError{Date: v.cal}
		}
		return time.Date(v.cal.Year, time.Month(v.cal.Month), v.cal.Day, 0, 0, 0, 0, loc), true, nil
	default:
		return time.Time{}, false, nil
	}
}

// ValidCalendarDate reports whether cd names a real day.
func ValidCalendarDate(cd datetime.CalendarDate) bool {
	if cd.Month < 1 || cd.Month > 12 || cd.Day < 1 {
		return false
	}
	return cd.Day <= datetime.DaysInMonth(cd.Year, cd.Month)
}

// Valid reports whether t can be used as a picker value.
func Valid(t time.Time) bool {
	return !t.IsZero()
}

func (v Value) String() string {
	switch v.kind {
	case kindMillis:
		return strconv.FormatInt(v.millis, 10)
	case kindTime:
		return v.t.Format(time.RFC3339)
	case kindCalendar:
		return fmt.Sprintf("%04d-%02d-%02d", v.cal.Year, int(v.cal.Month), v.cal.Day)
	}
	return "none"
}

var parseLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01",
	"2006",
}

// Parse accepts an integer epoch-millisecond value, YYYY, YYYY-MM,
// YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC3339. An empty string yields None.
func Parse(s string, loc *time.Location) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return None, nil
	}
	if loc == nil {
		loc = time.Local
	}
	if len(s) > 4 {
		if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Millis(ms), nil
		}
	}
	for _, layout := range parseLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			if layout == "2006-01-02" {
				return YMD(t.Year(), t.Month(), t.Day()), nil
			}
			return Time(t), nil
		}
	}
	return None, fmt.Errorf("invalid date %q (expected epoch ms, YYYY, YYYY-MM, YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC3339)", s)
}

// FromAny converts the loosely typed values found in config files (numbers,
// strings, times) into a Value.
func FromAny(x any, loc *time.Location) (Value, error) {
	switch t := x.(type) {
	case nil:
		return None, nil
	case Value:
		return t, nil
	case time.Time:
		return Time(t), nil
	case datetime.CalendarDate:
		return Calendar(t), nil
	case int:
		return Millis(int64(t)), nil
	case int64:
		return Millis(t), nil
	case float64:
		return Millis(int64(t)), nil
	case string:
		return Parse(t, loc)
	}
	return None, fmt.Errorf("unsupported date value %v (%T)", x, x)
}
