package cli

import (
	"time"

	"cloudeng.io/logging/ctxlog"
	"github.com/spf13/cobra"

	"datepick/internal/docs"
	"datepick/internal/granularity"
	"datepick/internal/tui"
)

type pickResult struct {
	Value    *time.Time `json:"value"`
	Text     string     `json:"text,omitempty"`
	Type     string     `json:"type"`
	Profile  string     `json:"profile,omitempty"`
	Canceled bool       `json:"canceled"`
}

func (r pickResult) Header() []string { return []string{"VALUE", "TYPE", "PROFILE"} }

func (r pickResult) Rows() [][]string {
	v := r.Text
	if r.Value == nil {
		v = "-"
	}
	return [][]string{{v, r.Type, r.Profile}}
}

func newPickCmd(app *App) *cobra.Command {
	var f sessionFlags
	var stay bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Run the interactive picker and print the chosen value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, f, stay)
		},
	}
	f.bind(cmd)
	f.bindUI(cmd)
	cmd.Flags().BoolVar(&stay, "stay", false, "Keep running after a value is picked (quit with q)")
	return cmd
}

func runPick(cmd *cobra.Command, app *App, f sessionFlags, stay bool) error {
	ss, err := resolveSession(app, f)
	if err != nil {
		return err
	}
	res, err := tui.Run(app.context(), tui.Config{
		Options:      ss.opts,
		Format:       ss.format,
		TimePicker:   ss.timePicker,
		Theme:        ss.theme,
		ExitOnCommit: !stay,
		Help:         docs.Keys(),
	})
	if err != nil {
		return err
	}
	out := newPickResult(ss, res)
	if res.HasValue && !res.Canceled && ss.profile != "" {
		if err := app.recordPick(ss.profile, res.Value); err != nil {
			return err
		}
	}
	return writeOut(cmd, app, out)
}

func newPickResult(ss session, res tui.Result) pickResult {
	g, err := granularity.Parse(ss.opts.Type)
	if err != nil {
		g = granularity.Date
	}
	out := pickResult{
		Type:     g.String(),
		Profile:  ss.profile,
		Canceled: res.Canceled,
	}
	if res.HasValue {
		v := res.Value
		out.Value = &v
		out.Text = ss.formatValue(v)
	}
	return out
}

func (app *App) recordPick(profile string, v time.Time) error {
	st, err := app.openStore()
	if err != nil {
		return err
	}
	defer st.Close()
	p, err := st.AddPick(app.context(), profile, v)
	if err != nil {
		return err
	}
	ctxlog.Logger(app.context()).Info("pick recorded", "profile", profile, "id", p.ID)
	return nil
}
