package main

import (
	"context"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/bestfirst"
)

const diamondYAML = `
edges:
  - {from: A, to: B, cost: 1}
  - {from: A, to: C, cost: 4}
  - {from: B, to: D, cost: 2}
  - {from: C, to: D, cost: 1}
heuristic:
  A: 3
  B: 2
  C: 1
`

// TestGraphFile_ParseAndBuild verifies the YAML schema and directed
// adjacency building.
func TestGraphFile_ParseAndBuild(t *testing.T) {
	var file graphFile
	require.NoError(t, yaml.Unmarshal([]byte(diamondYAML), &file))
	require.Len(t, file.Edges, 4)
	assert.False(t, file.Undirected)
	assert.Equal(t, 3.0, file.Heuristic["A"])

	space := buildSpace(file)
	assert.Len(t, space, 3, "only source nodes carry successor lists")
	assert.Equal(t, []bestfirst.Successor[string]{
		{State: "B", Cost: 1},
		{State: "C", Cost: 4},
	}, space["A"])
	assert.Empty(t, space["D"], "directed: D has no outgoing edges")
}

// TestGraphFile_UndirectedMirrorsEdges verifies that the undirected
// flag adds the reverse of every edge.
func TestGraphFile_UndirectedMirrorsEdges(t *testing.T) {
	var file graphFile
	require.NoError(t, yaml.Unmarshal([]byte("undirected: true\n"+diamondYAML), &file))
	require.True(t, file.Undirected)

	space := buildSpace(file)
	assert.Equal(t, []bestfirst.Successor[string]{
		{State: "B", Cost: 2},
		{State: "C", Cost: 1},
	}, space["D"])
}

// TestGraphFile_SearchWithHeuristicTable verifies the end-to-end wire:
// nodes missing from the heuristic table estimate zero, and the search
// still returns the cheap route.
func TestGraphFile_SearchWithHeuristicTable(t *testing.T) {
	var file graphFile
	require.NoError(t, yaml.Unmarshal([]byte(diamondYAML), &file))

	estimates := file.Heuristic
	result, err := bestfirst.New[string](buildSpace(file), "A", "D",
		bestfirst.WithHeuristic[string](func(from, _ string) float64 { return estimates[from] }),
	).Run(context.Background())
	require.NoError(t, err)
	require.True(t, result.Found())

	assert.Zero(t, estimates["D"], "missing table entries estimate zero")
	cost, err := result.Cost()
	require.NoError(t, err)
	assert.Equal(t, 3.0, cost)

	path, err := result.Path()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, path)
}
