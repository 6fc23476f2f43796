package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"datepick/internal/docs"
	"datepick/internal/tui"
)

type topicIndex struct {
	Topics []docs.Topic `json:"topics"`
}

func (x topicIndex) Header() []string { return []string{"TOPIC", "TITLE"} }

func (x topicIndex) Rows() [][]string {
	rows := make([][]string, 0, len(x.Topics))
	for _, t := range x.Topics {
		rows = append(rows, []string{t.Name, t.Title})
	}
	return rows
}

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Long:  "Show documentation topics. A topic may be shortened to any unambiguous prefix.",
		Short: "Show documentation topics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, topicIndex{Topics: docs.Index()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return fmt.Errorf("unknown docs topic: %q (run `datepick docs` to list topics)", topic)
			}

			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMarkdown(body, width, lipgloss.HasDarkBackground()))
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered markdown")

	return cmd
}
