package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"datepick/internal/datelike"
)

type checkResult struct {
	Date       string      `json:"date"`
	Type       string      `json:"type"`
	Selectable bool        `json:"selectable"`
	Selected   bool        `json:"selected"`
	Ranges     []rangeView `json:"ranges"`
}

func (r checkResult) Header() []string { return []string{"DATE", "TYPE", "SELECTABLE", "SELECTED"} }

func (r checkResult) Rows() [][]string {
	return [][]string{{r.Date, r.Type, strconv.FormatBool(r.Selectable), strconv.FormatBool(r.Selected)}}
}

func newCheckCmd(app *App) *cobra.Command {
	var f sessionFlags

	cmd := &cobra.Command{
		Use:   "check <date>",
		Short: "Report whether a date is selectable (and selected, given --date)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := datelike.Parse(args[0], app.loc)
			if err != nil {
				return err
			}
			if v.IsNone() {
				return fmt.Errorf("check: empty date")
			}
			ss, err := resolveSession(app, f)
			if err != nil {
				return err
			}
			ctrl, _, err := ss.headless(app.context())
			if err != nil {
				return err
			}
			defer ctrl.Destroy()

			return writeOut(cmd, app, checkResult{
				Date:       v.String(),
				Type:       ctrl.Type().String(),
				Selectable: ctrl.IsSelectable(v),
				Selected:   ctrl.IsSelected(v),
				Ranges:     rangeViews(ctrl.Ranges().Pairs(), app.loc),
			})
		},
	}
	f.bind(cmd)
	return cmd
}
