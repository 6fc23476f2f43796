// Package tui runs the picker as a Bubble Tea program.
package tui

import (
	"context"
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"datepick/internal/calendar"
	"datepick/internal/dateinput"
	"datepick/internal/locale"
	"datepick/internal/picker"
	"datepick/internal/timepicker"
)

// Config describes one interactive session.
type Config struct {
	// Options configures the controller. The calendar, input and time
	// widget are supplied by the program.
	Options picker.Options
	// Format is the input date format; empty keeps dateinput.DefaultFormat.
	Format     string
	TimePicker bool
	// Theme is light, dark or auto.
	Theme string
	// ExitOnCommit ends the session once a value is committed and the
	// calendar has closed.
	ExitOnCommit bool
	// Help is the markdown shown by the help overlay.
	Help string
}

// Result is what the session ended with.
type Result struct {
	Value    time.Time
	HasValue bool
	Canceled bool
}

type focusArea int

const (
	focusCalendar focusArea = iota
	focusInput
	focusHour
	focusMinute
)

type opener struct {
	ID       string
	activate picker.Signal
}

func (o *opener) OnActivate(fn func()) picker.Subscription { return o.activate.Add(fn) }

func (o *opener) Owns(t picker.Target) bool {
	s, ok := t.(string)
	return ok && s == o.ID
}

// outsideTarget is dispatched for esc, standing in for a click elsewhere.
const outsideTarget = "outside"

// Model is the program's tea.Model.
type Model struct {
	ctrl   *picker.Controller
	cal    *calendar.Model
	input  *dateinput.Model
	clock  *timepicker.Model
	opener *opener
	doc    *picker.Document
	now    func() time.Time

	keys     keyMap
	help     help.Model
	helpText string
	showHelp bool
	focus    focusArea
	status   string
	isErr    bool
	width    int

	exitOnCommit bool
	committed    bool
	quitting     bool
	canceled     bool
}

// NewModel builds the controller and its terminal collaborators.
func NewModel(ctx context.Context, cfg Config) (*Model, error) {
	opts := cfg.Options
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Document == nil {
		opts.Document = picker.NewDocument()
	}
	texts, err := locale.Lookup(opts.Language)
	if err != nil {
		// Reported with every other problem by picker.New.
		texts, _ = locale.Lookup("")
	}

	m := &Model{
		cal:          calendar.New(texts),
		input:        dateinput.New(opts.Location),
		opener:       &opener{ID: picker.NewTargetID("opener")},
		doc:          opts.Document,
		now:          opts.Now,
		keys:         defaultKeyMap(),
		help:         help.New(),
		helpText:     cfg.Help,
		exitOnCommit: cfg.ExitOnCommit,
	}
	if cfg.TimePicker {
		m.clock = timepicker.New(0, 0)
		opts.TimeWidget = m.clock
	}
	opts.Calendar = picker.CalendarOptions{Renderer: m.cal}
	opts.Input = picker.InputOptions{Adapter: m.input, Format: cfg.Format}
	opts.Openers = append(opts.Openers, m.opener)

	applyColorProfilePreference()
	applyThemePreference(cfg.Theme)

	ctrl, err := picker.New(ctx, opts)
	if err != nil {
		return nil, err
	}
	m.ctrl = ctrl
	ctrl.Subscribe(picker.EventError, func(ev picker.Event) {
		m.status, m.isErr = ev.Err.Message, true
	})
	ctrl.Subscribe(picker.EventChange, func(picker.Event) {
		m.isErr = false
		_, m.committed = ctrl.Date()
		if m.committed {
			m.status = "picked " + m.input.Value()
		} else {
			m.status = "cleared"
		}
	})
	m.cal.Focus()
	ctxlog.Logger(ctx).Debug("tui ready", "time_picker", cfg.TimePicker, "format", m.input.Format())
	return m, nil
}

// Controller exposes the picker driving the program.
func (m *Model) Controller() *picker.Controller { return m.ctrl }

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if m.exitOnCommit && m.committed && !m.ctrl.IsOpened() {
			m.quitting = true
		}
		if m.quitting {
			return m, tea.Quit
		}
		return m, cmd
	}
	return m, m.forward(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting, m.canceled = true, true
		return nil
	}
	if m.showHelp {
		m.showHelp = false
		return nil
	}
	if key.Matches(msg, m.keys.Focus) {
		return m.cycleFocus()
	}
	if m.focus != focusCalendar {
		if key.Matches(msg, m.keys.Outside) {
			return m.setFocus(focusCalendar)
		}
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.Opener):
		m.doc.Dispatch(m.opener.ID)
		m.opener.activate.Emit()
	case key.Matches(msg, m.keys.Outside):
		m.doc.Dispatch(outsideTarget)
	case key.Matches(msg, m.keys.Clear):
		m.ctrl.SetNull()
	case !m.ctrl.IsOpened():
		if key.Matches(msg, m.keys.Activate) {
			m.ctrl.Open()
		}
	case key.Matches(msg, m.keys.Activate):
		m.doc.Dispatch(m.cal.ID)
		if c, ok := m.cal.Cursor(); ok {
			m.ctrl.ActivateCell(c.Time)
			// Re-activating the current value closes without a change event.
			if !m.ctrl.IsOpened() {
				_, m.committed = m.ctrl.Date()
			}
		}
	case key.Matches(msg, m.keys.DrillUp):
		m.ctrl.DrillUp()
	case key.Matches(msg, m.keys.Prev):
		m.ctrl.Prev()
	case key.Matches(msg, m.keys.Next):
		m.ctrl.Next()
	case key.Matches(msg, m.keys.PrevYear):
		m.ctrl.PrevYear()
	case key.Matches(msg, m.keys.NextYear):
		m.ctrl.NextYear()
	case key.Matches(msg, m.keys.Today):
		m.ctrl.Navigate(m.now())
	default:
		if _, overflow := m.cal.Update(msg); overflow > 0 {
			m.ctrl.Next()
		} else if overflow < 0 {
			m.ctrl.Prev()
		}
	}
	return nil
}

func (m *Model) forward(msg tea.Msg) tea.Cmd {
	switch m.focus {
	case focusInput:
		return m.input.Update(msg)
	case focusHour, focusMinute:
		return m.clock.Update(msg)
	}
	return nil
}

func (m *Model) cycleFocus() tea.Cmd {
	next := m.focus + 1
	if m.clock == nil && next > focusInput {
		next = focusCalendar
	}
	if next > focusMinute {
		next = focusCalendar
	}
	return m.setFocus(next)
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	switch m.focus {
	case focusCalendar:
		m.cal.Blur()
	case focusInput:
		m.input.Blur()
	case focusHour, focusMinute:
		if f != focusHour && f != focusMinute {
			m.clock.Blur()
		}
	}
	m.focus = f
	switch f {
	case focusInput:
		m.doc.Dispatch(m.input.ID)
		return m.input.Focus()
	case focusHour:
		m.doc.Dispatch(m.clock.ID)
		return m.clock.FocusHour()
	case focusMinute:
		m.doc.Dispatch(m.clock.ID)
		return m.clock.FocusMinute()
	}
	m.cal.Focus()
	return nil
}

func (m *Model) View() string {
	if m.showHelp && m.helpText != "" {
		return RenderMarkdown(m.helpText, m.width, lipgloss.HasDarkBackground()) + "\n\n" + styleMuted().Render("press any key")
	}
	top := stylePanel(m.focus == focusInput).Render(m.input.View())
	if m.clock != nil {
		top = lipgloss.JoinHorizontal(lipgloss.Top, top, " ", stylePanel(m.focus == focusHour || m.focus == focusMinute).Render(m.clock.View()))
	}
	parts := []string{top}
	if m.ctrl.IsOpened() {
		parts = append(parts, stylePanel(m.focus == focusCalendar).Render(m.cal.View()))
	}
	if m.status != "" {
		st := styleMuted()
		if m.isErr {
			st = styleError()
		}
		parts = append(parts, st.Render(m.status))
	}
	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Result reports the committed value once the program has ended.
func (m *Model) Result() Result {
	v, ok := m.ctrl.Date()
	return Result{Value: v, HasValue: ok, Canceled: m.canceled}
}

// Run starts the program and blocks until the user is done.
func Run(ctx context.Context, cfg Config) (Result, error) {
	m, err := NewModel(ctx, cfg)
	if err != nil {
		return Result{}, err
	}
	defer m.ctrl.Destroy()
	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return Result{}, err
	}
	return final.(*Model).Result(), nil
}
