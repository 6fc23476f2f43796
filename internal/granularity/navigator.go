package granularity

import "time"

// Action is what activating a calendar cell results in.
type Action int

const (
	// ActionCommit means the cell's date should become the picker's value.
	ActionCommit Action = iota
	// ActionDrill means the navigator moved to a finer granularity.
	ActionDrill
)

func (a Action) String() string {
	if a == ActionDrill {
		return "drill"
	}
	return "commit"
}

// Navigator tracks which granularity is drawn while the user browses towards
// the granularity values are committed at.
type Navigator struct {
	active Granularity
	target Granularity
	anchor time.Time
}

// NewNavigator returns a navigator whose active granularity starts at target.
func NewNavigator(target Granularity) *Navigator {
	return &Navigator{active: target, target: target}
}

func (n *Navigator) Active() Granularity { return n.active }

func (n *Navigator) Target() Granularity { return n.target }

// Anchor is the date the displayed calendar is anchored to.
func (n *Navigator) Anchor() time.Time { return n.anchor }

// AtTarget reports whether activating a cell commits a value.
func (n *Navigator) AtTarget() bool { return n.active == n.target }

// Reset moves back to the target granularity anchored at t.
func (n *Navigator) Reset(t time.Time) {
	n.active = n.target
	n.anchor = t
}

// SetAnchor re-anchors without changing granularity.
func (n *Navigator) SetAnchor(t time.Time) { n.anchor = t }

// DrillDown moves one level finer (YEAR to MONTH, MONTH to DATE) unless the
// navigator is already at DATE or at its target. The anchor always moves to t.
// It reports whether the granularity changed.
func (n *Navigator) DrillDown(t time.Time) bool {
	n.anchor = t
	if n.active == Date || n.active >= n.target {
		return false
	}
	n.active = n.active.finer()
	return true
}

// DrillUp moves one level coarser, stopping at YEAR. The anchor always moves
// to t. It reports whether the granularity changed.
func (n *Navigator) DrillUp(t time.Time) bool {
	n.anchor = t
	if n.active == Year {
		return false
	}
	n.active = n.active.coarser()
	return true
}

// Activate decides what a click on the cell for t does: commit when the
// active granularity is the target, drill down otherwise.
func (n *Navigator) Activate(t time.Time) Action {
	if n.AtTarget() {
		n.anchor = t
		return ActionCommit
	}
	n.DrillDown(t)
	return ActionDrill
}
