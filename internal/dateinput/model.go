// Package dateinput is the text field bound to a picker. It formats the
// committed value with a picker date format and parses edits back.
package dateinput

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"datepick/internal/picker"
)

type KeyMap struct {
	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply typed date")),
	}
}

// Model is a textinput that implements picker.InputAdapter. The picker is
// told about edits when the user submits or leaves the field.
type Model struct {
	ID     string
	KeyMap KeyMap

	input    textinput.Model
	format   string
	layout   string
	loc      *time.Location
	synced   string
	disabled bool

	changed   picker.Signal
	activated picker.Signal
}

func New(loc *time.Location) *Model {
	if loc == nil {
		loc = time.Local
	}
	in := textinput.New()
	in.Placeholder = DefaultFormat
	in.CharLimit = 32
	in.Width = 20
	layout, _ := Layout(DefaultFormat)
	return &Model{
		ID:     picker.NewTargetID("input"),
		KeyMap: DefaultKeyMap(),
		input:  in,
		format: DefaultFormat,
		layout: layout,
		loc:    loc,
	}
}

func (m *Model) Format() string { return m.format }

func (m *Model) SetFormat(format string) error {
	layout, err := Layout(format)
	if err != nil {
		return err
	}
	m.format, m.layout = format, layout
	m.input.Placeholder = format
	return nil
}

// Date parses the current text. Blank text yields picker.ErrEmptyInput.
func (m *Model) Date() (time.Time, error) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return time.Time{}, picker.ErrEmptyInput
	}
	t, err := time.ParseInLocation(m.layout, text, m.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q does not match %s", text, m.format)
	}
	return t, nil
}

func (m *Model) SetDate(t time.Time) {
	m.setText(t.In(m.loc).Format(m.layout))
}

func (m *Model) ClearText() { m.setText("") }

func (m *Model) setText(s string) {
	m.input.SetValue(s)
	m.input.CursorEnd()
	m.synced = s
}

func (m *Model) Value() string { return m.input.Value() }

func (m *Model) Enable() { m.disabled = false }

func (m *Model) Disable() {
	m.disabled = true
	m.input.Blur()
}

func (m *Model) Disabled() bool { return m.disabled }

func (m *Model) OnChange(fn func()) picker.Subscription { return m.changed.Add(fn) }
func (m *Model) OnActivate(fn func()) picker.Subscription { return m.activated.Add(fn) }

func (m *Model) Owns(t picker.Target) bool {
	s, ok := t.(string)
	return ok && s == m.ID
}

// Focus enters the field, which counts as activating it.
func (m *Model) Focus() tea.Cmd {
	if m.disabled {
		return nil
	}
	cmd := m.input.Focus()
	m.activated.Emit()
	return cmd
}

// Blur leaves the field and reports an edit if the text changed.
func (m *Model) Blur() {
	m.input.Blur()
	m.submit()
}

func (m *Model) Focused() bool { return m.input.Focused() }

func (m *Model) submit() {
	if m.input.Value() == m.synced {
		return
	}
	m.changed.Emit()
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.disabled || !m.input.Focused() {
		return nil
	}
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, m.KeyMap.Submit) {
		m.submit()
		return nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) View() string { return m.input.View() }
