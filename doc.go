// Package bestfirst provides a generic best-first graph-search kernel.
//
// It implements A* over an abstract state space: supply a Space that
// enumerates successors with edge costs, a root and a goal state, and
// optionally a heuristic, and Run finds a minimum-cost path. With the
// zero heuristic (the default) the search degrades to uniform-cost
// (Dijkstra-style) search.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs
//     or debugging tools.
//
// The kernel never re-expands a state. Each state is closed at most
// once, at the first time it is popped from the frontier; later,
// costlier frontier entries for the same state are discarded when
// popped. Under an admissible and consistent heuristic the first pop
// of any state is already optimal, so the returned cost is the minimum
// achievable.
//
// The library is generic over the state type, which must be comparable
// so states can key the closed set. States are treated as immutable
// values; the kernel never mutates one.
package bestfirst
