// Package calendar is the terminal calendar grid the picker draws on. It
// lays out YEAR, MONTH and DATE pages, keeps a keyboard cursor and styles
// cells from the decoration the picker sends back after each draw.
package calendar

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"datepick/internal/granularity"
	"datepick/internal/locale"
	"datepick/internal/picker"
)

type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous cell")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next cell")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "row up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "row down")),
	}
}

// Model renders pages on request and reports each draw to its listeners.
type Model struct {
	// ID is the interaction target the grid claims as its own.
	ID     string
	KeyMap KeyMap
	Styles Styles

	texts     locale.Texts
	typ       granularity.Granularity
	date      time.Time
	cells     []picker.Cell
	deco      picker.Decoration
	decorated bool
	cursor    int
	focused   bool
	drawn     picker.Handlers[picker.Drawn]
}

func New(texts locale.Texts) *Model {
	return &Model{
		ID:     picker.NewTargetID("calendar"),
		KeyMap: DefaultKeyMap(),
		Styles: DefaultStyles(),
		texts:  texts,
		typ:    granularity.Date,
		date:   time.Now(),
	}
}

func (m *Model) Draw(req picker.DrawRequest) {
	m.typ, m.date = req.Type, req.Date
	m.cells = layout(req.Date, req.Type, m.texts)
	m.deco, m.decorated = picker.Decoration{}, false
	m.cursor = m.defaultCursor()
	m.drawn.Emit(picker.Drawn{Type: m.typ, Date: m.date, Cells: m.Cells()})
}

func (m *Model) defaultCursor() int {
	for i, c := range m.cells {
		if !c.Outside && granularity.Same(c.Time, m.date, m.typ) {
			return i
		}
	}
	for i, c := range m.cells {
		if !c.Outside {
			return i
		}
	}
	return 0
}

func (m *Model) Type() granularity.Granularity { return m.typ }
func (m *Model) Date() time.Time { return m.date }
func (m *Model) NextDate() time.Time { return step(m.date, m.typ, 1) }
func (m *Model) PrevDate() time.Time { return step(m.date, m.typ, -1) }
func (m *Model) NextYearDate() time.Time { return stepYear(m.date, m.typ, 1) }
func (m *Model) PrevYearDate() time.Time { return stepYear(m.date, m.typ, -1) }

func (m *Model) OnDrawn(fn func(picker.Drawn)) picker.Subscription {
	return m.drawn.Add(fn)
}

func (m *Model) Decorate(d picker.Decoration) {
	m.deco, m.decorated = d, len(d.Cells) == len(m.cells)
}

func (m *Model) Decoration() picker.Decoration { return m.deco }

func (m *Model) Owns(t picker.Target) bool {
	s, ok := t.(string)
	return ok && s == m.ID
}

// Cells returns a copy of the current page.
func (m *Model) Cells() []picker.Cell {
	return append([]picker.Cell(nil), m.cells...)
}

// Cursor returns the cell under the keyboard cursor.
func (m *Model) Cursor() (picker.Cell, bool) {
	if m.cursor < 0 || m.cursor >= len(m.cells) {
		return picker.Cell{}, false
	}
	return m.cells[m.cursor], true
}

// MoveCursor moves by delta cells. It returns -1 or 1 when the move would
// leave the page, leaving the cursor where it was.
func (m *Model) MoveCursor(delta int) int {
	n := m.cursor + delta
	switch {
	case n < 0:
		return -1
	case n >= len(m.cells):
		return 1
	}
	m.cursor = n
	return 0
}

func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur() { m.focused = false }
func (m *Model) Focused() bool { return m.focused }

// Update moves the cursor on arrow keys. overflow reports a move off the
// page so the caller can turn it.
func (m *Model) Update(msg tea.Msg) (handled bool, overflow int) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return false, 0
	}
	cols := columns(m.typ)
	switch {
	case key.Matches(km, m.KeyMap.Left):
		return true, m.MoveCursor(-1)
	case key.Matches(km, m.KeyMap.Right):
		return true, m.MoveCursor(1)
	case key.Matches(km, m.KeyMap.Up):
		return true, m.MoveCursor(-cols)
	case key.Matches(km, m.KeyMap.Down):
		return true, m.MoveCursor(cols)
	}
	return false, 0
}

func (m *Model) cellWidth() int {
	if m.typ == granularity.Date {
		return 4
	}
	w := 6
	for _, c := range m.cells {
		if cw := ansi.StringWidth(c.Label) + 2; cw > w {
			w = cw
		}
	}
	return w
}

func (m *Model) Title() string { return title(m.date, m.typ, m.texts) }

func (m *Model) View() string {
	cols := columns(m.typ)
	cw := m.cellWidth()
	width := cols * cw

	prev, next := "‹", "›"
	if m.deco.HidePrev {
		prev = " "
	}
	if m.deco.HideNext {
		next = " "
	}
	var b strings.Builder
	b.WriteString(m.Styles.Nav.Render(prev))
	b.WriteString(lipgloss.PlaceHorizontal(width-2, lipgloss.Center, m.Styles.Title.Render(m.Title())))
	b.WriteString(m.Styles.Nav.Render(next))
	b.WriteString("\n")

	if m.typ == granularity.Date {
		for _, wd := range m.texts.Weekdays {
			b.WriteString(m.Styles.Header.Render(padLeft(wd, cw)))
		}
		b.WriteString("\n")
	}
	for i, c := range m.cells {
		b.WriteString(m.renderCell(i, c, cw))
		if (i+1)%cols == 0 && i+1 < len(m.cells) {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) renderCell(i int, c picker.Cell, width int) string {
	st := m.Styles.Cell
	if c.Outside {
		st = m.Styles.Outside
	}
	if m.decorated {
		cs := m.deco.Cells[i]
		switch {
		case cs.Selected:
			st = m.Styles.Selected
		case !cs.Selectable:
			st = m.Styles.Disabled
		case cs.Today:
			st = m.Styles.Today
		}
	}
	if m.focused && i == m.cursor {
		st = st.Inherit(m.Styles.Cursor)
	}
	label := padLeft(c.Label, width-1)
	return " " + st.Render(label)
}

// padLeft right-aligns s in w terminal columns.
func padLeft(s string, w int) string {
	if n := w - ansi.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
