package config

import (
	"fmt"
	"strings"
	"time"

	"datepick/internal/datelike"
)

// RangeError reports a ranges entry that is not a [start, end] pair of
// dates or epoch milliseconds.
type RangeError struct {
	Index int
	Value any
	Err   error
}

func (e *RangeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ranges[%d] %v: %v", e.Index, e.Value, e.Err)
	}
	return fmt.Sprintf("ranges[%d] %v: want [start, end]", e.Index, e.Value)
}

func (e *RangeError) Unwrap() error { return e.Err }

// rangesFrom accepts the YAML list form or the string form used by
// DATEPICK_RANGES and --range flags.
func rangesFrom(raw any) ([][]datelike.Value, error) {
	switch x := raw.(type) {
	case nil:
		return nil, nil
	case string:
		if strings.TrimSpace(x) == "" {
			return nil, nil
		}
		return ParseRanges(strings.Split(x, ","), time.Local)
	case []any:
		out := make([][]datelike.Value, 0, len(x))
		for i, item := range x {
			pair, ok := item.([]any)
			if !ok || len(pair) != 2 {
				return nil, &RangeError{Index: i, Value: item}
			}
			a, err := datelike.FromAny(pair[0], time.Local)
			if err != nil {
				return nil, &RangeError{Index: i, Value: item, Err: err}
			}
			b, err := datelike.FromAny(pair[1], time.Local)
			if err != nil {
				return nil, &RangeError{Index: i, Value: item, Err: err}
			}
			out = append(out, []datelike.Value{a, b})
		}
		return out, nil
	}
	return nil, &RangeError{Index: 0, Value: raw}
}

// ParseRanges parses "start..end" items.
func ParseRanges(items []string, loc *time.Location) ([][]datelike.Value, error) {
	out := make([][]datelike.Value, 0, len(items))
	for i, item := range items {
		a, b, err := ParseRange(item, loc)
		if err != nil {
			return nil, &RangeError{Index: i, Value: item, Err: err}
		}
		out = append(out, []datelike.Value{a, b})
	}
	return out, nil
}

// ParseRange parses one "start..end" item.
func ParseRange(item string, loc *time.Location) (datelike.Value, datelike.Value, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(item), "..")
	if !ok {
		return datelike.None, datelike.None, fmt.Errorf("%q: want start..end", item)
	}
	a, err := datelike.Parse(lo, loc)
	if err != nil {
		return datelike.None, datelike.None, err
	}
	b, err := datelike.Parse(hi, loc)
	if err != nil {
		return datelike.None, datelike.None, err
	}
	if a.IsNone() || b.IsNone() {
		return datelike.None, datelike.None, fmt.Errorf("%q: both ends are required", item)
	}
	return a, b, nil
}
