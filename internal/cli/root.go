// Package cli provides the command-line interface for running puzzle solvers.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"advent/internal/config"
	"advent/internal/puzzle"
	"advent/internal/y2024"
)

// Version information (set at build time).
var Version = "0.1.0"

// envKey is used to store the per-invocation environment in the command context.
type envKey struct{}

type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command with one subcommand per registered day.
func NewRootCmd(registry *puzzle.Registry) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code solutions",
		Long: `aoc runs daily puzzle solvers against an input file and prints both answers.

  aoc day01 input.txt
  aoc run 2 input.txt`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), envKey{}, &env{cfg: cfg, logger: logger}))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultConfigFile+")")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format (text|json)")
	rootCmd.PersistentFlags().Bool("timing", false, "Print how long each solver took to stderr")

	for _, d := range registry.Days() {
		rootCmd.AddCommand(newDayCommand(d))
	}
	rootCmd.AddCommand(newRunCommand(registry))
	rootCmd.AddCommand(newListCommand(registry))
	rootCmd.AddCommand(newVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command with the 2024 puzzles.
func Execute() error {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd(puzzle.NewRegistry(y2024.Days()...))
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func envFrom(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return &env{cfg: &config.Config{}, logger: slog.New(slog.DiscardHandler)}
}
