package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"datepick/internal/config"
	"datepick/internal/dateinput"
	"datepick/internal/granularity"
	"datepick/internal/interval"
	"datepick/internal/locale"
	"datepick/internal/picker"
	"datepick/internal/store"
)

type rangeView struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	StartMs int64  `json:"startMs"`
	EndMs   int64  `json:"endMs"`
}

func (r rangeView) String() string { return r.Start + ".." + r.End }

func rangeViews(pairs [][2]int64, loc *time.Location) []rangeView {
	out := make([]rangeView, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, rangeView{
			Start:   endpointText(p[0], loc),
			End:     endpointText(p[1], loc),
			StartMs: p[0],
			EndMs:   p[1],
		})
	}
	return out
}

func endpointText(ms int64, loc *time.Location) string {
	switch {
	case ms <= picker.MinTimestamp:
		return "min"
	case ms >= picker.MaxTimestamp:
		return "max"
	}
	t := time.UnixMilli(ms).In(loc)
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}

// parseRangeMillis parses "start..end" into epoch milliseconds.
func parseRangeMillis(item string, loc *time.Location) (int64, int64, error) {
	a, b, err := config.ParseRange(item, loc)
	if err != nil {
		return 0, 0, err
	}
	ta, _, err := a.Resolve(loc)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", item, err)
	}
	tb, _, err := b.Resolve(loc)
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", item, err)
	}
	return ta.UnixMilli(), tb.UnixMilli(), nil
}

type profileView struct {
	Name      string                `json:"name"`
	Ranges    []rangeView           `json:"ranges"`
	Settings  store.ProfileSettings `json:"settings"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func newProfileView(p store.Profile, loc *time.Location) profileView {
	return profileView{
		Name:      p.Name,
		Ranges:    rangeViews(p.Ranges, loc),
		Settings:  p.Settings,
		UpdatedAt: p.UpdatedAt,
	}
}

func (v profileView) Header() []string { return []string{"START", "END"} }

func (v profileView) Rows() [][]string {
	rows := make([][]string, 0, len(v.Ranges))
	for _, r := range v.Ranges {
		rows = append(rows, []string{r.Start, r.End})
	}
	return rows
}

type profileList []profileView

func (l profileList) Header() []string { return []string{"NAME", "TYPE", "RANGES", "UPDATED"} }

func (l profileList) Rows() [][]string {
	rows := make([][]string, 0, len(l))
	for _, p := range l {
		typ := p.Settings.Type
		if typ == "" {
			typ = "-"
		}
		parts := make([]string, 0, len(p.Ranges))
		for _, r := range p.Ranges {
			parts = append(parts, r.String())
		}
		rows = append(rows, []string{p.Name, typ, strings.Join(parts, ", "), p.UpdatedAt.Local().Format(time.DateTime)})
	}
	return rows
}

func newRangesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranges",
		Short: "Manage named range profiles",
	}
	cmd.AddCommand(newRangesListCmd(app))
	cmd.AddCommand(newRangesShowCmd(app))
	cmd.AddCommand(newRangesEditCmd(app, "add", "Add ranges to a profile (created if missing)", true))
	cmd.AddCommand(newRangesEditCmd(app, "remove", "Cut ranges out of a profile", false))
	cmd.AddCommand(newRangesSetCmd(app))
	cmd.AddCommand(newRangesDeleteCmd(app))
	return cmd
}

func newRangesListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			ps, err := st.Profiles(app.context())
			if err != nil {
				return err
			}
			out := make(profileList, 0, len(ps))
			for _, p := range ps {
				out = append(out, newProfileView(p, app.loc))
			}
			return writeOut(cmd, app, out)
		},
	}
}

func newRangesShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <profile>",
		Short: "Show a profile's ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			p, err := st.Profile(app.context(), args[0])
			if err != nil {
				return err
			}
			return writeOut(cmd, app, newProfileView(p, app.loc))
		},
	}
}

func newRangesEditCmd(app *App, verb, short string, add bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " <profile> <start..end>...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pairs := make([][2]int64, 0, len(args)-1)
			for _, item := range args[1:] {
				a, b, err := parseRangeMillis(item, app.loc)
				if err != nil {
					return err
				}
				pairs = append(pairs, [2]int64{a, b})
			}
			st, err := app.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			p, err := st.UpdateProfile(app.context(), args[0], add, func(p *store.Profile) error {
				set := p.Set()
				for _, r := range pairs {
					if add {
						set.Add(r[0], r[1])
					} else {
						set.Subtract(r[0], r[1])
					}
				}
				p.Ranges = set.Pairs()
				return nil
			})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, newProfileView(p, app.loc))
		},
	}
}

func newRangesSetCmd(app *App) *cobra.Command {
	var (
		typ, lang, dateFormat string
		timePicker            bool
	)
	cmd := &cobra.Command{
		Use:   "set <profile> [start..end...]",
		Short: "Replace a profile's ranges and settings (no ranges: nothing selectable)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := interval.New()
			for _, item := range args[1:] {
				a, b, err := parseRangeMillis(item, app.loc)
				if err != nil {
					return err
				}
				set.Add(a, b)
			}
			st, err := app.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			fs := cmd.Flags()
			if err := validateProfileSettings(fs.Changed("type"), typ, fs.Changed("lang"), lang, fs.Changed("date-format"), dateFormat); err != nil {
				return err
			}
			p, err := st.UpdateProfile(app.context(), args[0], true, func(p *store.Profile) error {
				p.Ranges = set.Pairs()
				if fs.Changed("type") {
					p.Settings.Type = typ
				}
				if fs.Changed("lang") {
					p.Settings.Language = lang
				}
				if fs.Changed("date-format") {
					p.Settings.Format = dateFormat
				}
				if fs.Changed("timepicker") {
					p.Settings.TimePicker = timePicker
				}
				return nil
			})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, newProfileView(p, app.loc))
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "Granularity for pickers using this profile")
	cmd.Flags().StringVar(&lang, "lang", "", "Calendar language")
	cmd.Flags().StringVar(&dateFormat, "date-format", "", "Text input format")
	cmd.Flags().BoolVar(&timePicker, "timepicker", false, "Show hour and minute fields")
	return cmd
}

// validateProfileSettings rejects settings a picker would refuse later.
func validateProfileSettings(setType bool, typ string, setLang bool, lang string, setFormat bool, format string) error {
	if setType {
		if _, err := granularity.Parse(typ); err != nil {
			return err
		}
	}
	if setLang {
		if _, err := locale.Lookup(lang); err != nil {
			return err
		}
	}
	if setFormat && format != "" {
		if _, err := dateinput.Layout(format); err != nil {
			return err
		}
	}
	return nil
}

func newRangesDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <profile>",
		Short: "Delete a profile and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			if err := st.DeleteProfile(app.context(), args[0]); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{"name": args[0], "deleted": true})
		},
	}
}
