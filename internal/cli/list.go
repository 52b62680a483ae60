package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"advent/internal/puzzle"
)

func newListCommand(registry *puzzle.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available puzzles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Command", "Year", "Day", "Title"})
			for _, d := range registry.Days() {
				t.AppendRow(table.Row{d.Name(), d.Year, d.Day, d.Title})
			}
			t.Render()
			return nil
		},
	}
}
