// Package pathutil rebuilds paths from the predecessor map a search
// builds while closing states.
package pathutil

// Predecessor records, for a closed state, the state it was reached
// from. Known is false for the root, which has no predecessor.
type Predecessor[S comparable] struct {
	State S
	Known bool
}

// Rebuild walks predecessor links from goal back to the root,
// collecting states, then reverses so the result reads root to goal
// inclusive.
func Rebuild[S comparable](pred map[S]Predecessor[S], goal S) []S {
	path := []S{goal}
	current := goal
	for {
		p, ok := pred[current]
		if !ok || !p.Known {
			break
		}
		path = append(path, p.State)
		current = p.State
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
