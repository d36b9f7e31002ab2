// Package gridworld implements a 2D grid state space for the bestfirst
// kernel: 4-connected unit-cost moves between open cells, with a
// Manhattan-distance heuristic.
package gridworld

import (
	"math/rand"

	"github.com/pdrpinto/bestfirst"
)

// Point is a cell coordinate, x then y.
type Point [2]int

// Grid is a W×H board. Cells present in Walls are impassable.
type Grid struct {
	W, H  int
	Walls map[Point]bool
}

var directions = []Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// In reports whether p lies on the board.
func (g Grid) In(p Point) bool {
	return p[0] >= 0 && p[0] < g.W && p[1] >= 0 && p[1] < g.H
}

// Successors returns the open orthogonal neighbors of p, each at unit
// cost. It satisfies bestfirst.Space[Point].
func (g Grid) Successors(p Point) []bestfirst.Successor[Point] {
	res := make([]bestfirst.Successor[Point], 0, 4)
	for _, d := range directions {
		np := Point{p[0] + d[0], p[1] + d[1]}
		if g.In(np) && !g.Walls[np] {
			res = append(res, bestfirst.Successor[Point]{State: np, Cost: 1})
		}
	}
	return res
}

// Manhattan is the L1 distance between two points. With unit-cost
// orthogonal moves it is admissible and consistent.
func Manhattan(a, b Point) float64 {
	dx := a[0] - b[0]
	if dx < 0 {
		dx = -dx
	}
	dy := a[1] - b[1]
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}

// RandomWalls lays down clustered walls via random walks, never
// covering start or goal. The same seed always produces the same
// layout.
func RandomWalls(w, h, clusters, steps int, density float64, start, goal Point, seed int64) map[Point]bool {
	r := rand.New(rand.NewSource(seed))
	walls := map[Point]bool{}
	for c := 0; c < clusters; c++ {
		p := Point{r.Intn(w), r.Intn(h)}
		for s := 0; s < steps; s++ {
			if r.Float64() < density && p != start && p != goal {
				walls[p] = true
			}
			d := directions[r.Intn(4)]
			np := Point{p[0] + d[0], p[1] + d[1]}
			if np[0] >= 0 && np[0] < w && np[1] >= 0 && np[1] < h {
				p = np
			}
		}
	}
	return walls
}
