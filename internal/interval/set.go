// Package interval implements the set of selectable millisecond ranges
// backing a date picker. A Set is always kept in canonical form: sorted,
// pairwise disjoint and minimal, so that no two stored intervals could be
// merged into one.
package interval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-intervals/intervalset"
)

// Interval is a closed range of millisecond timestamps.
type Interval struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

func (i Interval) String() string {
	return fmt.Sprintf("[%d, %d]", i.Start, i.End)
}

// Pair returns the interval as a [start, end] pair.
func (i Interval) Pair() [2]int64 {
	return [2]int64{i.Start, i.End}
}

// EmptySetError is returned when the minimum or maximum of an empty Set is
// requested. Callers should treat it as "nothing is selectable".
type EmptySetError struct {
	op string
}

func (e *EmptySetError) Error() string {
	return "interval: " + e.op + " of empty set"
}

func (e *EmptySetError) Is(target error) bool {
	_, ok := target.(*EmptySetError)
	return ok
}

// ErrEmptySet matches any *EmptySetError with errors.Is.
var ErrEmptySet error = &EmptySetError{op: "query"}

// Set is a canonical set of closed intervals. The zero value is not usable;
// create sets with New.
type Set struct {
	ivs *intervalset.Set
}

// New returns a set holding the union of pairs. The endpoints of each pair
// may be given in either order.
func New(pairs ...[2]int64) *Set {
	s := &Set{ivs: intervalset.Empty()}
	for _, p := range pairs {
		s.Add(p[0], p[1])
	}
	return s
}

func single(start, end int64) *intervalset.Set {
	return intervalset.NewSet([]intervalset.Interval{closedSpan(start, end)})
}

// Add merges [start, end] into the set. Intervals that overlap it, share an
// endpoint with it or sit immediately next to it are merged into one.
func (s *Set) Add(start, end int64) {
	s.ivs.Add(single(start, end))
	s.coalesce()
}

// Subtract removes [start, end] from the set. An interval strictly
// containing the range is split in two; intervals partially covered are
// shrunk and fully covered ones are removed.
func (s *Set) Subtract(start, end int64) {
	s.ivs.Sub(single(start, end))
	s.coalesce()
}

// coalesce rebuilds the set so that adjoining spans are stored as one and
// empty spans are dropped.
func (s *Set) coalesce() {
	var out []intervalset.Interval
	for _, iv := range s.ivs.AllIntervals() {
		cur := asSpan(iv)
		if cur.IsZero() {
			continue
		}
		if n := len(out); n > 0 {
			last := asSpan(out[n-1])
			if cur.lo <= last.hi {
				out[n-1] = &span{lo: last.lo, hi: max(last.hi, cur.hi)}
				continue
			}
		}
		out = append(out, &span{lo: cur.lo, hi: cur.hi})
	}
	s.ivs = intervalset.NewSet(out)
}

// HasOverlap reports whether any interval in the set intersects the closed
// range [start, end].
func (s *Set) HasOverlap(start, end int64) bool {
	probe := closedSpan(start, end)
	for _, iv := range s.ivs.AllIntervals() {
		if !asSpan(iv).intersect(probe).IsZero() {
			return true
		}
	}
	return false
}

// Contains reports whether ts lies inside one of the intervals.
func (s *Set) Contains(ts int64) bool {
	return s.HasOverlap(ts, ts)
}

// Minimum returns the smallest start in the set.
func (s *Set) Minimum() (int64, error) {
	all := s.ivs.AllIntervals()
	if len(all) == 0 {
		return 0, &EmptySetError{op: "minimum"}
	}
	return asSpan(all[0]).lo, nil
}

// Maximum returns the largest end in the set.
func (s *Set) Maximum() (int64, error) {
	all := s.ivs.AllIntervals()
	if len(all) == 0 {
		return 0, &EmptySetError{op: "maximum"}
	}
	return asSpan(all[len(all)-1]).closed().End, nil
}

// Intervals returns the canonical intervals in ascending order.
func (s *Set) Intervals() []Interval {
	all := s.ivs.AllIntervals()
	out := make([]Interval, 0, len(all))
	for _, iv := range all {
		out = append(out, asSpan(iv).closed())
	}
	return out
}

// Pairs returns the canonical intervals as [start, end] pairs. New(s.Pairs()...)
// yields a set equal to s.
func (s *Set) Pairs() [][2]int64 {
	ivs := s.Intervals()
	out := make([][2]int64, 0, len(ivs))
	for _, iv := range ivs {
		out = append(out, iv.Pair())
	}
	return out
}

func (s *Set) Len() int {
	return len(s.ivs.AllIntervals())
}

func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

func (s *Set) Clone() *Set {
	return &Set{ivs: s.ivs.Copy()}
}

// Equal reports whether both sets hold the same intervals.
func (s *Set) Equal(o *Set) bool {
	a, b := s.Intervals(), o.Intervals()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (s *Set) String() string {
	parts := make([]string, 0, s.Len())
	for _, iv := range s.Intervals() {
		parts = append(parts, iv.String())
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// IsEmptySet reports whether err is an *EmptySetError.
func IsEmptySet(err error) bool {
	return errors.Is(err, ErrEmptySet)
}
