package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/bestfirst"
)

// graphFile is the YAML schema for the graph subcommand: a list of
// weighted edges plus an optional per-node heuristic table. Nodes
// missing from the table estimate zero.
type graphFile struct {
	Undirected bool `yaml:"undirected"`
	Edges      []struct {
		From string  `yaml:"from"`
		To   string  `yaml:"to"`
		Cost float64 `yaml:"cost"`
	} `yaml:"edges"`
	Heuristic map[string]float64 `yaml:"heuristic"`
}

// adjacency is a bestfirst.Space over node names.
type adjacency map[string][]bestfirst.Successor[string]

func (a adjacency) Successors(node string) []bestfirst.Successor[string] {
	return a[node]
}

// buildSpace turns the parsed edge list into an adjacency space,
// mirroring each edge when the file declares the graph undirected.
func buildSpace(file graphFile) adjacency {
	space := make(adjacency)
	for _, edge := range file.Edges {
		space[edge.From] = append(space[edge.From], bestfirst.Successor[string]{State: edge.To, Cost: edge.Cost})
		if file.Undirected {
			space[edge.To] = append(space[edge.To], bestfirst.Successor[string]{State: edge.From, Cost: edge.Cost})
		}
	}
	return space
}

func newGraphCmd() *cobra.Command {
	var (
		input string
		start string
		goal  string
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Search a weighted graph loaded from a YAML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read graph file: %w", err)
			}
			var file graphFile
			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parse graph file: %w", err)
			}

			space := buildSpace(file)
			logger.Debug("graph loaded",
				"input", input,
				"nodes", len(space),
				"edges", len(file.Edges),
				"undirected", file.Undirected,
			)

			options := []bestfirst.Option[string]{}
			if len(file.Heuristic) > 0 {
				estimates := file.Heuristic
				options = append(options, bestfirst.WithHeuristic[string](
					func(from, _ string) float64 { return estimates[from] },
				))
			}

			began := time.Now()
			result, err := bestfirst.New[string](space, start, goal, options...).Run(cmd.Context())
			if err != nil {
				return err
			}
			logger.Debug("search finished",
				"found", result.Found(),
				"expanded", result.Expanded(),
				"elapsed", time.Since(began).String(),
			)

			return printResult(cmd, result)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to the YAML graph file")
	cmd.Flags().StringVar(&start, "start", "", "Root node")
	cmd.Flags().StringVar(&goal, "goal", "", "Goal node")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("goal")

	return cmd
}

func printResult(cmd *cobra.Command, result *bestfirst.Result[string]) error {
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	if noColor {
		okStyle = lipgloss.NewStyle()
		failStyle = okStyle
		labelStyle = okStyle
	}

	out := cmd.OutOrStdout()
	if !result.Found() {
		fmt.Fprintf(out, "%s (expanded %d states)\n", failStyle.Render("no path"), result.Expanded())
		return nil
	}

	cost, err := result.Cost()
	if err != nil {
		return err
	}
	depth, err := result.Depth()
	if err != nil {
		return err
	}
	path, err := result.Path()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s cost=%g depth=%d expanded=%d\n",
		okStyle.Render("path found"), cost, depth, result.Expanded())
	fmt.Fprintf(out, "%s %s\n", labelStyle.Render("path:"), strings.Join(path, " -> "))
	return nil
}
