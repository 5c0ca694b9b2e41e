// Package flow implements minimum s-t cut solvers for the binary
// sub-problems built by the move-making minimizers in package fastmin.
//
// A Network is an arena of regular nodes, each carrying one terminal
// capacity pair (source→node, node→sink), plus directed arc pairs between
// regular nodes. It is cleared with Reset and refilled per move, so the
// backing slices are reused across thousands of cuts.
//
// The solvers offered are:
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(V² · E) in general; far better on grid-shaped networks.
//
//   - Memory: O(V + E) for levels, arc iterators and the residual arena.
//
//   - Default solver; high practical performance on dense capacities.
//
//   - EdmondsKarp
//
//   - Method: breadth-first search for shortest augmenting paths.
//
//   - Time:   O(V · E²).
//
//   - Memory: O(V + E) for the residual arena and BFS parents.
//
//   - Simple and predictable; useful as a reference.
//
//   - PushRelabel
//
//   - Method: highest-label preflow push with exact initial heights.
//
//   - Time:   O(V² · √E).
//
//   - Memory: O(V + E) plus the active-node heap.
//
//   - Stops at a maximum preflow, which is all a minimum cut needs.
//
// # Cut convention
//
// Every solver reports a node on the sink side iff the sink is reachable
// from it in the final residual network. Ties therefore resolve to the
// source side, identically for all solvers.
//
// # Capacities
//
// Capacities are float64. Terminal capacities may take any finite value:
// AddTWeights keeps only their difference and records the common part as a
// constant flow offset, which does not change the minimum cut. Arc
// capacities must be finite and non-negative. Residual capacities at or
// below FlowOptions.Epsilon are treated as saturated.
//
// # Errors
//
//	ErrNodeOutOfRange - an edge or terminal references a missing node.
//	EdgeError         - a negative or non-finite capacity was supplied.
//	ErrUnknownSolver  - NewSolver was given an unknown name.
//	context.Canceled / context.DeadlineExceeded - if ctx is canceled.
package flow
