package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"datepick/internal/store"
)

type historyView []store.Pick

func (h historyView) Header() []string { return []string{"ID", "PROFILE", "VALUE", "PICKED AT"} }

func (h historyView) Rows() [][]string {
	rows := make([][]string, 0, len(h))
	for _, p := range h {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			p.Profile,
			p.Value.Local().Format(time.RFC3339),
			p.CreatedAt.Local().Format(time.DateTime),
		})
	}
	return rows
}

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent picks (all profiles unless --profile is given)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := app.openStore()
			if err != nil {
				return err
			}
			defer st.Close()
			picks, err := st.RecentPicks(app.context(), app.Profile, limit)
			if err != nil {
				return err
			}
			return writeOut(cmd, app, historyView(picks))
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of picks")
	return cmd
}
