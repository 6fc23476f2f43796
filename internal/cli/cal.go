package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"datepick/internal/datelike"
	"datepick/internal/granularity"
	"datepick/internal/picker"
)

func newCalCmd(app *App) *cobra.Command {
	var (
		f       sessionFlags
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "cal [month]",
		Short: "Print a calendar page; selectable cells are bold, the rest faint",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			ss, err := resolveSession(app, f)
			if err != nil {
				return err
			}
			ss.opts.ShowAlways = true
			ctrl, cal, err := ss.headless(app.context())
			if err != nil {
				return err
			}
			defer ctrl.Destroy()

			if len(args) == 1 {
				v, err := datelike.Parse(args[0], app.loc)
				if err != nil {
					return err
				}
				t, ok, err := v.Resolve(app.loc)
				if err != nil {
					return err
				}
				if ok {
					ctrl.Navigate(t)
				}
			}
			wd := ctrl.Texts().Weekdays
			return printPage(cmd.OutOrStdout(), cal.Title(), wd[:], cal.Cells(), cal.Decoration())
		},
	}
	f.bind(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color and text attributes")
	return cmd
}

// printPage writes one calendar page. Days of neighbouring months are left
// blank and rows holding none of the page's days are skipped.
func printPage(w io.Writer, title string, weekdays []string, cells []picker.Cell, d picker.Decoration) error {
	cols, cw := 3, 5
	if d.Type == granularity.Date {
		cols, cw = 7, 3
	}
	inner := cols*cw - 2
	tw := ansi.StringWidth(title)
	left := max((inner-tw)/2, 0)
	right := max(inner-tw-left, 0)

	prev, next := "<", ">"
	if d.HidePrev {
		prev = " "
	}
	if d.HideNext {
		next = " "
	}
	head := prev + strings.Repeat(" ", left) + color.New(color.Bold).Sprint(title) + strings.Repeat(" ", right) + next
	if _, err := fmt.Fprintln(w, strings.TrimRight(head, " ")); err != nil {
		return err
	}

	if d.Type == granularity.Date {
		labels := make([]string, 0, len(weekdays))
		for _, wd := range weekdays {
			labels = append(labels, padCell(wd, cw-1))
		}
		if _, err := fmt.Fprintln(w, color.New(color.Faint).Sprint(strings.Join(labels, " "))); err != nil {
			return err
		}
	}

	row := make([]string, 0, cols)
	flush := func() error {
		line := strings.TrimRight(strings.Join(row, " "), " ")
		row = row[:0]
		if line == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, line)
		return err
	}
	for i, c := range cells {
		label := c.Label
		if c.Outside {
			label = ""
		}
		cell := padCell(label, cw-1)
		if label != "" && i < len(d.Cells) {
			cell = cellColor(d.Cells[i]).Sprint(cell)
		}
		row = append(row, cell)
		if len(row) == cols {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}

func cellColor(cs picker.CellState) *color.Color {
	c := color.New(color.Faint)
	if cs.Selectable {
		c = color.New(color.Bold)
	}
	if cs.Today {
		c.Add(color.Underline)
	}
	if cs.Selected {
		c.Add(color.ReverseVideo)
	}
	return c
}

// padCell right-aligns s in w terminal columns.
func padCell(s string, w int) string {
	if n := w - ansi.StringWidth(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
