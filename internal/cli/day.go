package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"advent/internal/puzzle"
	"advent/reader"
)

var timingStyle = lipgloss.NewStyle().Faint(true)

func newDayCommand(d puzzle.Day) *cobra.Command {
	return &cobra.Command{
		Use:   d.Name() + " <input-file>",
		Short: fmt.Sprintf("%d day %d: %s", d.Year, d.Day, d.Title),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(cmd, d, args)
		},
	}
}

func newRunCommand(registry *puzzle.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "run <day> <input-file>",
		Short: "Run the solver for a day given by number or name",
		Example: `  aoc run 1 input.txt
  aoc run day03 input.txt`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := registry.Lookup(args[0])
			if err != nil {
				return err
			}
			return runDay(cmd, d, args[1:])
		},
	}
}

func runDay(cmd *cobra.Command, d puzzle.Day, args []string) error {
	e := envFrom(cmd.Context())

	r, err := reader.FromArgs(args)
	if err != nil {
		return err
	}

	start := time.Now()
	if _, err := puzzle.Run(d, r, cmd.OutOrStdout(), e.logger); err != nil {
		return err
	}
	if e.cfg.Timing {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), timingStyle.Render(fmt.Sprintf("%s solved in %s", d.Name(), time.Since(start))))
	}
	return nil
}
