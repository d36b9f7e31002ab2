package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRebuild_RootOnly verifies the single-state path.
func TestRebuild_RootOnly(t *testing.T) {
	pred := map[string]Predecessor[string]{
		"A": {},
	}
	assert.Equal(t, []string{"A"}, Rebuild(pred, "A"))
}

// TestRebuild_Chain verifies ordering from root to goal.
func TestRebuild_Chain(t *testing.T) {
	pred := map[string]Predecessor[string]{
		"A": {},
		"B": {State: "A", Known: true},
		"C": {State: "B", Known: true},
		"D": {State: "C", Known: true},
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, Rebuild(pred, "D"))
}

// TestRebuild_IgnoresSideBranches verifies that unrelated closed
// states do not leak into the path.
func TestRebuild_IgnoresSideBranches(t *testing.T) {
	pred := map[string]Predecessor[string]{
		"A": {},
		"B": {State: "A", Known: true},
		"X": {State: "A", Known: true},
		"D": {State: "B", Known: true},
	}
	assert.Equal(t, []string{"A", "B", "D"}, Rebuild(pred, "D"))
}
