// Package fastmin minimizes multi-label energies on N-dimensional grids
// with the move-making algorithms of Boykov, Veksler and Zabih
// ("Fast approximate energy minimization via graph cuts", TPAMI 2001):
// alpha-expansion and alpha-beta-swap.
//
// The energy of a labeling ℓ under a CostModel (D, V) is
//
//	E(ℓ) = Σ_p D[ℓ(p), p] + Σ_{(p,q) adjacent} V[ℓ(p), ℓ(q)]
//
// where adjacency is axis-aligned and every pair is counted once.
//
// Each move reduces the multi-label problem to a binary one solved by a
// single minimum cut (package flow):
//
//   - Expansion(alpha): every position either keeps its label or switches
//     to alpha. Requires V to be a metric.
//   - Swap(alpha, beta): positions labeled alpha or beta are relabeled
//     among {alpha, beta}; all others are fixed. Requires V to be a
//     semi-metric (symmetric, zero diagonal).
//
// A cycle tries every move once, labels in ascending order for expansion
// and pairs (alpha < beta) in lexicographic order for swap. Minimization
// stops after a cycle without changes or when the cycle budget is spent.
//
// The metric preconditions are not checked; CheckMetric and
// CheckSemiMetric are available for callers who want to. By default every
// move is also guarded: it is kept only if the total energy strictly
// decreases, which guarantees termination even for ill-posed V.
//
// Errors:
//
//	ErrShapeMismatch - D, V or the labeling have inconsistent dimensions.
//	ErrInvalidLabel  - a supplied labeling holds a label outside [0, L).
//	ErrInvalidCost   - D or V contain NaN or ±Inf.
//	ErrSolverFailure - the minimum-cut solver failed; the cause is kept.
package fastmin
