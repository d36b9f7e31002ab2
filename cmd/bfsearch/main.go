// Package main is the entry point for the bfsearch demo CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Global flags.
var (
	verbose bool
	noColor bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bfsearch",
		Short: "Best-first graph search demos",
		Long: `bfsearch runs the bestfirst A* kernel over example state spaces:
a weighted graph loaded from a YAML file, or a randomly generated
grid world searched with the Manhattan heuristic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	root.AddCommand(newGraphCmd())
	root.AddCommand(newGridCmd())

	return root
}

// newLogger creates a structured JSON logger on stderr; --verbose
// lowers the level to debug.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
