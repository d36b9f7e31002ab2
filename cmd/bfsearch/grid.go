package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/gridworld"
)

func newGridCmd() *cobra.Command {
	var (
		width    int
		height   int
		seed     int64
		clusters int
		steps    int
		density  float64
	)

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Search a randomly generated grid world",
		Long: `grid generates a board with clustered random walls, then searches
from the top-left to the bottom-right corner using the Manhattan
heuristic and renders the board with the found path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			start := gridworld.Point{0, 0}
			goal := gridworld.Point{width - 1, height - 1}
			board := gridworld.Grid{
				W:     width,
				H:     height,
				Walls: gridworld.RandomWalls(width, height, clusters, steps, density, start, goal, seed),
			}
			logger.Debug("grid generated",
				"width", width, "height", height, "seed", seed, "walls", len(board.Walls))

			began := time.Now()
			result, err := bestfirst.New[gridworld.Point](board, start, goal,
				bestfirst.WithHeuristic[gridworld.Point](gridworld.Manhattan),
			).Run(cmd.Context())
			if err != nil {
				return err
			}
			logger.Debug("search finished",
				"found", result.Found(),
				"expanded", result.Expanded(),
				"elapsed", time.Since(began).String(),
			)

			return renderGrid(cmd, board, start, goal, result)
		},
	}

	cmd.Flags().IntVar(&width, "width", 24, "Board width")
	cmd.Flags().IntVar(&height, "height", 12, "Board height")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Wall generation seed")
	cmd.Flags().IntVar(&clusters, "clusters", 6, "Number of wall clusters")
	cmd.Flags().IntVar(&steps, "steps", 40, "Random-walk steps per cluster")
	cmd.Flags().Float64Var(&density, "density", 0.6, "Wall placement probability per step")

	return cmd
}

func renderGrid(cmd *cobra.Command, board gridworld.Grid, start, goal gridworld.Point, result *bestfirst.Result[gridworld.Point]) error {
	wallStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	markStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	if noColor {
		wallStyle = lipgloss.NewStyle()
		pathStyle = wallStyle
		markStyle = wallStyle
	}

	onPath := map[gridworld.Point]bool{}
	if result.Found() {
		path, err := result.Path()
		if err != nil {
			return err
		}
		for _, p := range path {
			onPath[p] = true
		}
	}

	out := cmd.OutOrStdout()
	var row strings.Builder
	for y := 0; y < board.H; y++ {
		row.Reset()
		for x := 0; x < board.W; x++ {
			p := gridworld.Point{x, y}
			switch {
			case p == start:
				row.WriteString(markStyle.Render("S "))
			case p == goal:
				row.WriteString(markStyle.Render("G "))
			case board.Walls[p]:
				row.WriteString(wallStyle.Render("██"))
			case onPath[p]:
				row.WriteString(pathStyle.Render("· "))
			default:
				row.WriteString("  ")
			}
		}
		fmt.Fprintln(out, row.String())
	}

	if !result.Found() {
		fmt.Fprintf(out, "no path (expanded %d states)\n", result.Expanded())
		return nil
	}
	cost, err := result.Cost()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "path found: cost=%g expanded=%d\n", cost, result.Expanded())
	return nil
}
