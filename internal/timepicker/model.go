// Package timepicker is the hour/minute sub-widget of the picker.
package timepicker

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"datepick/internal/picker"
)

type field int

const (
	fieldNone field = iota
	fieldHour
	fieldMinute
)

type KeyMap struct {
	Inc    key.Binding
	Dec    key.Binding
	Submit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Inc:    key.NewBinding(key.WithKeys("up", "+"), key.WithHelp("↑/+", "increase")),
		Dec:    key.NewBinding(key.WithKeys("down", "-"), key.WithHelp("↓/-", "decrease")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply time")),
	}
}

// Model implements picker.TimeWidget with two numeric fields.
type Model struct {
	ID     string
	KeyMap KeyMap

	hourInput   textinput.Model
	minuteInput textinput.Model
	focus       field
	hour        int
	minute      int
	changed     picker.Signal
}

func New(hour, minute int) *Model {
	m := &Model{ID: picker.NewTargetID("time"), KeyMap: DefaultKeyMap()}
	m.hourInput = textinput.New()
	m.hourInput.Placeholder = "HH"
	m.hourInput.CharLimit = 2
	m.hourInput.Width = 4
	m.hourInput.Prompt = ""
	m.minuteInput = textinput.New()
	m.minuteInput.Placeholder = "MM"
	m.minuteInput.CharLimit = 2
	m.minuteInput.Width = 4
	m.minuteInput.Prompt = ""
	m.SetTime(hour, minute)
	return m
}

func (m *Model) Hour() int { return m.hour }
func (m *Model) Minute() int { return m.minute }

// SetTime updates the fields without notifying listeners.
func (m *Model) SetTime(hour, minute int) {
	m.hour, m.minute = clamp(hour, 0, 23), clamp(minute, 0, 59)
	m.hourInput.SetValue(fmt2(m.hour))
	m.minuteInput.SetValue(fmt2(m.minute))
}

func (m *Model) OnChange(fn func()) picker.Subscription { return m.changed.Add(fn) }

func (m *Model) Owns(t picker.Target) bool {
	s, ok := t.(string)
	return ok && s == m.ID
}

func (m *Model) FocusHour() tea.Cmd {
	m.apply()
	m.focus = fieldHour
	m.minuteInput.Blur()
	return m.hourInput.Focus()
}

func (m *Model) FocusMinute() tea.Cmd {
	m.apply()
	m.focus = fieldMinute
	m.hourInput.Blur()
	return m.minuteInput.Focus()
}

// Blur applies typed text and leaves both fields.
func (m *Model) Blur() {
	m.apply()
	m.focus = fieldNone
	m.hourInput.Blur()
	m.minuteInput.Blur()
}

func (m *Model) Focused() bool { return m.focus != fieldNone }

// apply reads both fields, clamps them and notifies when the time moved.
func (m *Model) apply() {
	h := clamp(parseIntDefault(m.hourInput.Value(), m.hour), 0, 23)
	mi := clamp(parseIntDefault(m.minuteInput.Value(), m.minute), 0, 59)
	m.set(h, mi)
}

func (m *Model) set(h, mi int) {
	changed := h != m.hour || mi != m.minute
	m.SetTime(h, mi)
	if changed {
		m.changed.Emit()
	}
}

func (m *Model) bump(delta int) {
	m.apply()
	h, mi := m.hour, m.minute
	switch m.focus {
	case fieldHour:
		h, mi = wrap(h+delta, mi)
	case fieldMinute:
		h, mi = wrap(h, mi+delta)
	default:
		return
	}
	m.set(h, mi)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.focus == fieldNone {
		return nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, m.KeyMap.Inc):
			m.bump(1)
			return nil
		case key.Matches(km, m.KeyMap.Dec):
			m.bump(-1)
			return nil
		case key.Matches(km, m.KeyMap.Submit):
			m.apply()
			return nil
		}
	}
	var cmd tea.Cmd
	if m.focus == fieldHour {
		m.hourInput, cmd = m.hourInput.Update(msg)
	} else {
		m.minuteInput, cmd = m.minuteInput.Update(msg)
	}
	return cmd
}

func (m *Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.hourInput.View(), ":", m.minuteInput.View())
}
