package bestfirst

import (
	"context"

	"github.com/pdrpinto/bestfirst/internal/pathutil"
)

// Snapshot exposes the per-iteration state of a stepped search. The
// maps are copies; callers may keep or mutate them freely.
type Snapshot[S comparable] struct {
	Current   S
	Open      map[S]bool
	Closed    map[S]bool
	CameFrom  map[S]S
	Done      bool
	Found     bool
	Path      []S
	StepIndex int
}

// Stepper advances a search one expansion at a time, for driving UIs
// or debugging tools. It shares the kernel's semantics exactly: the
// same frontier ordering, the same no-reopen policy, the same lazy
// discarding of stale duplicates. A Stepper owns its session and must
// not be used from multiple goroutines.
type Stepper[S comparable] struct {
	space     Space[S]
	goal      S
	heuristic Heuristic[S]

	session   *session[S]
	stepCount int
	done      bool
	found     bool
}

// NewStepper creates a stepper for the given problem. Without options,
// or with a nil heuristic, the zero heuristic is used, as with New.
func NewStepper[S comparable](space Space[S], root S, goal S, options ...Option[S]) *Stepper[S] {
	stepperOptions := Options[S]{Heuristic: Zero[S]}
	for _, option := range options {
		option(&stepperOptions)
	}
	if stepperOptions.Heuristic == nil {
		stepperOptions.Heuristic = Zero[S]
	}
	return &Stepper[S]{
		space:     space,
		goal:      goal,
		heuristic: stepperOptions.Heuristic,
		session:   newSession[S](root, stepperOptions.Heuristic(root, goal)),
	}
}

// Step advances the search by one honored expansion and returns a
// snapshot. Stale frontier entries are discarded within the same step,
// so every returned snapshot reflects exactly one newly closed state.
// Once the search is done, further calls return the terminal snapshot
// unchanged. Cancellation of ctx ends the search with an error.
func (s *Stepper[S]) Step(ctx context.Context) (Snapshot[S], error) {
	if err := ctx.Err(); err != nil {
		s.done = true
		return s.snapshot(), err
	}
	if s.done {
		return s.snapshot(), nil
	}

	if !s.session.expand() {
		s.done = true
		return s.snapshot(), nil
	}
	s.stepCount++

	if s.session.current.State == s.goal {
		s.done = true
		s.found = true
		return s.snapshot(), nil
	}

	s.session.pushSuccessors(s.space, s.goal, s.heuristic)
	return s.snapshot(), nil
}

func (s *Stepper[S]) snapshot() Snapshot[S] {
	snap := Snapshot[S]{
		Open:      s.openStates(),
		Closed:    make(map[S]bool, len(s.session.closed)),
		CameFrom:  make(map[S]S),
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.stepCount,
	}
	for state, pred := range s.session.closed {
		snap.Closed[state] = true
		if pred.Known {
			snap.CameFrom[state] = pred.State
		}
	}
	if current := s.session.current; current != nil {
		snap.Current = current.State
	}
	if s.found {
		snap.Path = pathutil.Rebuild(s.session.closed, s.session.current.State)
	}
	return snap
}

// openStates collects the distinct unclosed states still waiting in
// the frontier.
func (s *Stepper[S]) openStates() map[S]bool {
	open := make(map[S]bool, s.session.frontier.Len())
	for _, entry := range s.session.frontier {
		if _, seen := s.session.closed[entry.State]; seen {
			continue
		}
		open[entry.State] = true
	}
	return open
}
