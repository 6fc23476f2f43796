package picker

import (
	"time"

	cerrors "cloudeng.io/errors"

	"datepick/internal/datelike"
	"datepick/internal/granularity"
	"datepick/internal/interval"
	"datepick/internal/locale"
)

// Bounds of the default selectable range, the extremes a JavaScript-style
// millisecond date can represent.
const (
	MinTimestamp int64 = -8_640_000_000_000_000
	MaxTimestamp int64 = 8_640_000_000_000_000
)

type InputOptions struct {
	Adapter InputAdapter
	// Format is a date format made of yyyy, yy, MM, M, dd, d, HH, hh, mm
	// and A tokens. Empty keeps the adapter's own format.
	Format string
}

type CalendarOptions struct {
	Renderer Renderer
}

// Options configures a Controller.
type Options struct {
	// Language selects the locale text table; empty means "en".
	Language string
	// Type is the target granularity: "date" (default), "month" or "year".
	Type string
	// Date is the initial value, kept only when selectable.
	Date       datelike.Value
	ShowAlways bool
	AutoClose  bool
	// SelectableRanges holds [start, end] pairs. Nil means everything is
	// selectable; an empty non-nil slice means nothing is.
	SelectableRanges [][]datelike.Value
	Openers          []Opener
	Input            InputOptions
	Calendar         CalendarOptions
	TimeWidget       TimeWidget

	Location *time.Location
	Now      func() time.Time
	Document *Document
}

type resolved struct {
	target granularity.Granularity
	texts  locale.Texts
	ranges *interval.Set
	loc    *time.Location
	now    func() time.Time
	doc    *Document
}

func (o Options) resolve() (resolved, error) {
	r := resolved{loc: o.Location, now: o.Now, doc: o.Document}
	if r.loc == nil {
		r.loc = time.Local
	}
	if r.now == nil {
		r.now = time.Now
	}
	if r.doc == nil {
		r.doc = DefaultDocument
	}

	errs := &cerrors.M{}
	typ := o.Type
	if typ == "" {
		typ = "date"
	}
	g, err := granularity.Parse(typ)
	if err != nil {
		errs.Append(err)
	}
	r.target = g

	texts, err := locale.Lookup(o.Language)
	if err != nil {
		errs.Append(err)
	}
	r.texts = texts

	if o.Calendar.Renderer == nil {
		errs.Append(missingError{what: "calendar renderer"})
	}
	if o.Input.Format != "" && o.Input.Adapter == nil {
		errs.Append(missingError{what: "input adapter for format " + o.Input.Format})
	}

	ranges, rerr := rangesFrom(o.SelectableRanges, r.loc)
	if rerr != nil {
		errs.Append(rerr)
	}
	r.ranges = ranges

	if err := errs.Err(); err != nil {
		return resolved{}, &ConfigurationError{Err: err}
	}
	return r, nil
}

// rangesFrom converts raw pairs to a set. Problems with individual pairs
// are collected rather than stopping at the first.
func rangesFrom(pairs [][]datelike.Value, loc *time.Location) (*interval.Set, error) {
	if pairs == nil {
		return interval.New([2]int64{MinTimestamp, MaxTimestamp}), nil
	}
	errs := &cerrors.M{}
	set := interval.New()
	for i, p := range pairs {
		a, b, err := rangePair(i, p, loc)
		if err != nil {
			errs.Append(err)
			continue
		}
		set.Add(a, b)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func rangePair(i int, p []datelike.Value, loc *time.Location) (int64, int64, error) {
	if len(p) != 2 {
		return 0, 0, rangeError{index: i, reason: "want exactly two endpoints"}
	}
	var out [2]int64
	for j, v := range p {
		ms, err := endpoint(v, loc)
		if err != nil {
			return 0, 0, rangeError{index: i, reason: err.Error()}
		}
		out[j] = ms
	}
	return out[0], out[1], nil
}

func endpoint(v datelike.Value, loc *time.Location) (int64, error) {
	t, ok, err := v.Resolve(loc)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, missingError{what: "endpoint"}
	}
	return t.UnixMilli(), nil
}
