// Package selection holds a picker's committed value and answers whether
// candidate dates are selectable or selected.
package selection

import (
	"time"

	"datepick/internal/datelike"
	"datepick/internal/granularity"
	"datepick/internal/interval"
)

// State owns the committed value and the selectable ranges. It never
// notifies anyone; callers react to the booleans Commit and Clear return.
type State struct {
	current *time.Time
	target  granularity.Granularity
	ranges  *interval.Set
}

// New returns a state committing at target granularity within ranges. A nil
// ranges set means nothing is selectable.
func New(target granularity.Granularity, ranges *interval.Set) *State {
	if ranges == nil {
		ranges = interval.New()
	}
	return &State{target: target, ranges: ranges}
}

func (s *State) Granularity() granularity.Granularity { return s.target }

// Ranges returns the set used for bounds checks. Mutating it is visible to
// the state.
func (s *State) Ranges() *interval.Set { return s.ranges }

// ReplaceRanges swaps the selectable ranges wholesale.
func (s *State) ReplaceRanges(ranges *interval.Set) {
	if ranges == nil {
		ranges = interval.New()
	}
	s.ranges = ranges
}

// Value returns a copy of the committed value.
func (s *State) Value() (time.Time, bool) {
	if s.current == nil {
		return time.Time{}, false
	}
	return *s.current, true
}

func (s *State) HasValue() bool { return s.current != nil }

// IsSelectable reports whether the g-sized period containing t overlaps a
// selectable range.
func (s *State) IsSelectable(t time.Time, g granularity.Granularity) bool {
	if !datelike.Valid(t) || !g.Valid() {
		return false
	}
	start, end := granularity.SpanMillis(t, g)
	return s.ranges.HasOverlap(start, end)
}

// IsSelected reports whether t matches the committed value at g's
// resolution.
func (s *State) IsSelected(t time.Time, g granularity.Granularity) bool {
	if s.current == nil || !datelike.Valid(t) {
		return false
	}
	return granularity.Same(*s.current, t, g)
}

// CurrentSelectable reports whether the committed value is still selectable.
// It is false when there is no value.
func (s *State) CurrentSelectable() bool {
	if s.current == nil {
		return false
	}
	return s.IsSelectable(*s.current, s.target)
}

// Commit makes t the value when it is valid, selectable at the target
// granularity and different from the current value. It reports whether the
// value changed.
func (s *State) Commit(t time.Time) bool {
	if !s.IsSelectable(t, s.target) {
		return false
	}
	if s.current != nil && s.current.UnixMilli() == t.UnixMilli() {
		return false
	}
	v := t
	s.current = &v
	return true
}

// Clear drops the value and reports whether there was one.
func (s *State) Clear() bool {
	if s.current == nil {
		return false
	}
	s.current = nil
	return true
}
