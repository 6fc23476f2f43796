package interval

import (
	"fmt"
	"math"

	"github.com/google/go-intervals/intervalset"
)

// span is the intervalset.Interval stored in a Set. It is half-open,
// [lo, hi), so a closed millisecond interval [a, b] is stored as [a, b+1).
// Half-open spans make discretely adjacent intervals adjoin and merge.
type span struct {
	lo, hi int64
}

func closedSpan(start, end int64) *span {
	if start > end {
		start, end = end, start
	}
	if end == math.MaxInt64 {
		end--
	}
	return &span{lo: start, hi: end + 1}
}

func (s *span) closed() Interval {
	return Interval{Start: s.lo, End: s.hi - 1}
}

func (s *span) String() string {
	return fmt.Sprintf("[%d, %d)", s.lo, s.hi)
}

func asSpan(i intervalset.Interval) *span {
	s, ok := i.(*span)
	if !ok {
		panic(fmt.Errorf("interval: unexpected interval type %T", i))
	}
	return s
}

func (s *span) IsZero() bool {
	return s.lo >= s.hi
}

func (s *span) Before(other intervalset.Interval) bool {
	return s.hi <= asSpan(other).lo
}

func (s *span) intersect(b *span) *span {
	out := &span{lo: max(s.lo, b.lo), hi: min(s.hi, b.hi)}
	if out.IsZero() {
		return &span{}
	}
	return out
}

func (s *span) Intersect(other intervalset.Interval) intervalset.Interval {
	return s.intersect(asSpan(other))
}

func (s *span) Bisect(other intervalset.Interval) (intervalset.Interval, intervalset.Interval) {
	b := asSpan(other)
	cut := s.intersect(b)
	if cut.IsZero() {
		if s.Before(b) {
			return s, &span{}
		}
		return &span{}, s
	}
	piece := func(lo, hi int64) *span {
		if lo >= hi {
			return &span{}
		}
		return &span{lo: lo, hi: hi}
	}
	return piece(s.lo, cut.lo), piece(cut.hi, s.hi)
}

func (s *span) Adjoin(other intervalset.Interval) intervalset.Interval {
	b := asSpan(other)
	switch {
	case s.hi == b.lo:
		return &span{lo: s.lo, hi: b.hi}
	case b.hi == s.lo:
		return &span{lo: b.lo, hi: s.hi}
	}
	return &span{}
}

func (s *span) Encompass(other intervalset.Interval) intervalset.Interval {
	b := asSpan(other)
	return &span{lo: min(s.lo, b.lo), hi: max(s.hi, b.hi)}
}
