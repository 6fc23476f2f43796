package picker

import (
	"time"

	"datepick/internal/granularity"
)

// DrawRequest asks a renderer to show the page containing Date at Type.
type DrawRequest struct {
	Date time.Time
	Type granularity.Granularity
}

// Cell is one drawn, activatable cell. Outside marks DATE cells that spill
// over from the neighbouring months.
type Cell struct {
	Time    time.Time
	Label   string
	Outside bool
}

// Drawn is what a renderer reports after a draw.
type Drawn struct {
	Type  granularity.Granularity
	Date  time.Time
	Cells []Cell
}

// CellState is the decoration of one drawn cell.
type CellState struct {
	Time       time.Time
	Selectable bool
	Selected   bool
	Today      bool
}

// Decoration tells a renderer how to style the page it just drew.
type Decoration struct {
	Type     granularity.Granularity
	Cells    []CellState
	HidePrev bool
	HideNext bool
}

// Renderer draws the calendar grid.
type Renderer interface {
	Draw(DrawRequest)
	Type() granularity.Granularity
	Date() time.Time
	NextDate() time.Time
	PrevDate() time.Time
	NextYearDate() time.Time
	PrevYearDate() time.Time
	OnDrawn(func(Drawn)) Subscription
	Decorate(Decoration)
}

// TimeWidget is the optional hour/minute sub-widget. SetTime does not fire
// OnChange callbacks; only user edits do.
type TimeWidget interface {
	Hour() int
	Minute() int
	SetTime(hour, minute int)
	OnChange(func()) Subscription
}

// InputAdapter is the text input bound to the picker. Date returns
// ErrEmptyInput when the text is blank.
type InputAdapter interface {
	Date() (time.Time, error)
	SetDate(time.Time)
	SetFormat(string) error
	ClearText()
	Enable()
	Disable()
	OnChange(func()) Subscription
	OnActivate(func()) Subscription
}

// Opener is a control that toggles the picker when activated.
type Opener interface {
	OnActivate(func()) Subscription
}
