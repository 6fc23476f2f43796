package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"datepick/internal/calendar"
	"datepick/internal/config"
	"datepick/internal/dateinput"
	"datepick/internal/datelike"
	"datepick/internal/locale"
	"datepick/internal/picker"
)

// sessionFlags are the picker settings a command may override on the
// command line. Only flags the user actually set take effect.
type sessionFlags struct {
	cmd *cobra.Command

	typ        string
	lang       string
	dateFormat string
	date       string
	ranges     []string
	timePicker bool
	showAlways bool
	theme      string
}

func (f *sessionFlags) bind(cmd *cobra.Command) {
	f.cmd = cmd
	fs := cmd.Flags()
	fs.StringVar(&f.typ, "type", "", "Granularity to pick (date|month|year)")
	fs.StringVar(&f.lang, "lang", "", "Calendar language (en|ko)")
	fs.StringVar(&f.date, "date", "", "Initial value (YYYY-MM-DD, YYYY-MM, YYYY, epoch ms or RFC3339)")
	fs.StringArrayVar(&f.ranges, "range", nil, "Selectable range start..end (repeatable; replaces config and profile ranges)")
}

func (f *sessionFlags) bindUI(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.dateFormat, "date-format", "", "Text input format (tokens: yyyy yy MM M dd d HH hh mm A)")
	fs.BoolVar(&f.timePicker, "timepicker", false, "Show hour and minute fields")
	fs.BoolVar(&f.showAlways, "show-always", false, "Keep the calendar open")
	fs.StringVar(&f.theme, "theme", "", "Color theme (light|dark|auto)")
}

func (f *sessionFlags) changed(name string) bool {
	return f.cmd != nil && f.cmd.Flags().Changed(name)
}

// session is the resolved configuration of one picker.
type session struct {
	opts       picker.Options
	format     string
	timePicker bool
	theme      string
	profile    string
}

// resolveSession layers config file, --profile and flags, in that order.
func resolveSession(app *App, f sessionFlags) (session, error) {
	s := app.settings
	ss := session{
		opts:       s.PickerOptions(app.loc),
		format:     s.Format,
		timePicker: s.TimePicker,
		theme:      s.Theme,
	}
	ss.opts.Now = app.now

	p, ok, err := app.profile()
	if err != nil {
		return session{}, err
	}
	if ok {
		ss.profile = p.Name
		ss.opts.SelectableRanges = p.Values()
		if p.Settings.Type != "" {
			ss.opts.Type = p.Settings.Type
		}
		if p.Settings.Language != "" {
			ss.opts.Language = p.Settings.Language
		}
		if p.Settings.Format != "" {
			ss.format = p.Settings.Format
		}
		ss.timePicker = ss.timePicker || p.Settings.TimePicker
	}

	if f.changed("type") {
		ss.opts.Type = f.typ
	}
	if f.changed("lang") {
		ss.opts.Language = f.lang
	}
	if f.changed("date-format") {
		ss.format = f.dateFormat
	}
	if f.changed("timepicker") {
		ss.timePicker = f.timePicker
	}
	if f.changed("show-always") {
		ss.opts.ShowAlways = f.showAlways
	}
	if f.changed("theme") {
		ss.theme = f.theme
	}
	if f.changed("range") {
		ranges, err := config.ParseRanges(f.ranges, app.loc)
		if err != nil {
			return session{}, err
		}
		ss.opts.SelectableRanges = ranges
	}
	if f.changed("date") {
		v, err := datelike.Parse(f.date, app.loc)
		if err != nil {
			return session{}, err
		}
		ss.opts.Date = v
	}
	return ss, nil
}

// formatValue renders t with the session's input format, falling back to
// the default format when it does not compile.
func (ss session) formatValue(t time.Time) string {
	layout, err := dateinput.Layout(ss.format)
	if err != nil {
		layout, _ = dateinput.Layout(dateinput.DefaultFormat)
	}
	return t.In(ss.location()).Format(layout)
}

func (ss session) location() *time.Location {
	if ss.opts.Location == nil {
		return time.Local
	}
	return ss.opts.Location
}

// headless builds a controller around an undisplayed calendar model, for
// commands that query or print the picker without running the TUI.
func (ss session) headless(ctx context.Context) (*picker.Controller, *calendar.Model, error) {
	texts, err := locale.Lookup(ss.opts.Language)
	if err != nil {
		// picker.New reports the language with any other problem.
		texts, _ = locale.Lookup("")
	}
	cal := calendar.New(texts)
	opts := ss.opts
	opts.Calendar = picker.CalendarOptions{Renderer: cal}
	ctrl, err := picker.New(ctx, opts)
	if err != nil {
		return nil, nil, err
	}
	return ctrl, cal, nil
}
