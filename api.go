package bestfirst

import (
	"container/heap"
	"context"
	"errors"

	"github.com/pdrpinto/bestfirst/internal/pathutil"
)

// ErrNoPath is returned by Result accessors when the search exhausted
// the frontier without closing the goal. It is a query-time error, not
// a run-time one: Run itself treats an unreachable goal as a normal
// terminal outcome.
var ErrNoPath = errors.New("bestfirst: no path to goal")

// Space is the state-space contract the kernel searches over.
// Successors must return a finite slice and every Cost must be
// non-negative; both are caller obligations the kernel does not
// validate.
type Space[S comparable] interface {
	Successors(state S) []Successor[S]
}

// Successor is a state reachable in one step, with the cost of the
// edge leading to it.
type Successor[S comparable] struct {
	State S
	Cost  float64
}

// Heuristic estimates the remaining cost from a state to the goal.
// It must be non-negative. For the returned cost to be optimal it must
// also be admissible (never overestimate) and, because the kernel
// never reopens closed states, consistent (the estimate may not drop
// by more than the edge cost between adjacent states).
type Heuristic[S comparable] func(from S, goal S) float64

// Zero is the identically-zero heuristic. It turns the search into
// uniform-cost (Dijkstra-style) search and is the default when no
// heuristic is given.
func Zero[S comparable](S, S) float64 { return 0 }

// Options defines parameters for the search.
type Options[S comparable] struct {
	Heuristic Heuristic[S]
}

// Option is a function that modifies Options.
type Option[S comparable] func(*Options[S])

// WithHeuristic sets the estimate function used to order the frontier.
func WithHeuristic[S comparable](h Heuristic[S]) Option[S] {
	return func(options *Options[S]) { options.Heuristic = h }
}

// Search is the immutable description of a search problem: the space,
// the root and goal states, and the heuristic. It holds no run state;
// every call to Run works on a fresh session, so a Search may be run
// repeatedly (or concurrently from several goroutines) and each run
// sees identical input.
type Search[S comparable] struct {
	space     Space[S]
	root      S
	goal      S
	heuristic Heuristic[S]
}

// New constructs a search over the given space from root to goal.
// Without options, or with a nil heuristic, the zero heuristic is
// used.
func New[S comparable](space Space[S], root S, goal S, options ...Option[S]) *Search[S] {
	searchOptions := Options[S]{Heuristic: Zero[S]}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.Heuristic == nil {
		searchOptions.Heuristic = Zero[S]
	}
	return &Search[S]{
		space:     space,
		root:      root,
		goal:      goal,
		heuristic: searchOptions.Heuristic,
	}
}

// session is the mutable working state of one run: the frontier, the
// closed set (which doubles as the predecessor map), and the entry
// most recently closed. It is created fresh per invocation and frozen
// inside the Result once the run terminates.
type session[S comparable] struct {
	frontier PriorityQueue[S]
	closed   map[S]pathutil.Predecessor[S]
	current  *QueueEntry[S]
	nextSeq  uint64
	expanded int
}

func newSession[S comparable](root S, h float64) *session[S] {
	s := &session[S]{
		frontier: make(PriorityQueue[S], 0),
		closed:   make(map[S]pathutil.Predecessor[S]),
	}
	heap.Init(&s.frontier)
	s.push(&QueueEntry[S]{State: root, HCost: h})
	return s
}

func (s *session[S]) push(e *QueueEntry[S]) {
	e.FCost = e.GScore + e.HCost
	e.seq = s.nextSeq
	s.nextSeq++
	heap.Push(&s.frontier, e)
}

// expand pops frontier entries until one closes a new state, closes
// it, and reports whether any entry was left to pop. Stale entries for
// already-closed states are discarded without effect.
func (s *session[S]) expand() bool {
	for s.frontier.Len() > 0 {
		entry := heap.Pop(&s.frontier).(*QueueEntry[S])
		if _, seen := s.closed[entry.State]; seen {
			continue
		}
		s.closed[entry.State] = pathutil.Predecessor[S]{State: entry.Pred, Known: entry.HasPred}
		s.current = entry
		s.expanded++
		return true
	}
	return false
}

// pushSuccessors enqueues every successor of the current entry's state
// that is not yet closed. Duplicates already waiting in the frontier
// are allowed; whichever pops first wins and the rest become stale.
func (s *session[S]) pushSuccessors(space Space[S], goal S, h Heuristic[S]) {
	current := s.current
	for _, successor := range space.Successors(current.State) {
		if _, seen := s.closed[successor.State]; seen {
			continue
		}
		s.push(&QueueEntry[S]{
			State:   successor.State,
			Pred:    current.State,
			HasPred: true,
			Depth:   current.Depth + 1,
			GScore:  current.GScore + successor.Cost,
			HCost:   h(successor.State, goal),
		})
	}
}

// Run executes the search to a terminal state and returns the frozen
// Result. The context is checked once per frontier pop; cancellation
// is the only error Run returns. An unreachable goal is not an error:
// it yields a Result whose Found reports false.
func (s *Search[S]) Run(ctx context.Context) (*Result[S], error) {
	sess := newSession[S](s.root, s.heuristic(s.root, s.goal))
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !sess.expand() {
			return &Result[S]{session: sess}, nil
		}
		if sess.current.State == s.goal {
			return &Result[S]{session: sess, found: true}, nil
		}
		sess.pushSuccessors(s.space, s.goal, s.heuristic)
	}
}

// Result is the read-only outcome of one run.
type Result[S comparable] struct {
	session *session[S]
	found   bool
}

// Found reports whether the run closed the goal state.
func (r *Result[S]) Found() bool { return r.found }

// Expanded returns the number of states closed during the run.
func (r *Result[S]) Expanded() int { return r.session.expanded }

// Depth returns the number of edges on the found path, or ErrNoPath.
func (r *Result[S]) Depth() (int, error) {
	if !r.found {
		return 0, ErrNoPath
	}
	return r.session.current.Depth, nil
}

// Cost returns the accumulated cost of the found path, or ErrNoPath.
func (r *Result[S]) Cost() (float64, error) {
	if !r.found {
		return 0, ErrNoPath
	}
	return r.session.current.GScore, nil
}

// Path returns the found path from root to goal inclusive, so its
// length is always depth+1. It returns ErrNoPath if the goal was not
// reached.
func (r *Result[S]) Path() ([]S, error) {
	if !r.found {
		return nil, ErrNoPath
	}
	return pathutil.Rebuild(r.session.closed, r.session.current.State), nil
}
