package fastmin

import (
	"github.com/katalvlaran/gridcut/grid"
)

// buildExpansion fills m.nw with the binary sub-problem of expanding alpha
// over labels.
//
// Node p (= position p) lands on the source side to keep ℓ(p) and on the
// sink side to switch to alpha:
//   - terminals: sink side pays D[alpha,p], source side pays D[ℓ(p),p].
//   - ℓ(p) == ℓ(q) == l: edge p↔q of capacity V[l,alpha] (V[alpha,l] back),
//     paid when exactly one of the two switches.
//   - ℓ(p) != ℓ(q): auxiliary node a with p↔a of capacity V[ℓ(p),alpha],
//     q↔a of capacity V[alpha,ℓ(q)], and a→sink of capacity V[ℓ(p),ℓ(q)].
//     The cut prices this pair exactly when V obeys the triangle inequality.
//
// Negative pairwise costs are clamped to zero on inter-node edges; the
// resulting cut is then only a heuristic, and the energy guard decides.
//
// Complexity: O(S·N) time; at most one auxiliary node per pair.
func (m *Minimizer) buildExpansion(labels *grid.Labels, alpha int) error {
	cm := m.cm
	data := labels.Data()
	m.nw.Reset(len(data))

	for p, lp := range data {
		if err := m.nw.AddTWeights(p, cm.d(alpha, p), cm.d(lp, p)); err != nil {
			return err
		}
	}

	var err error
	labels.ForEachPair(func(p, q int) {
		if err != nil {
			return
		}
		lp, lq := data[p], data[q]
		if lp == lq {
			if lp != alpha {
				err = m.nw.AddEdge(p, q, edgeCap(cm.w(lp, alpha)), edgeCap(cm.w(alpha, lq)))
			}
			return
		}
		a := m.nw.AddNode()
		if err = m.nw.AddEdge(p, a, edgeCap(cm.w(lp, alpha)), edgeCap(cm.w(lp, alpha))); err != nil {
			return
		}
		if err = m.nw.AddEdge(q, a, edgeCap(cm.w(alpha, lq)), edgeCap(cm.w(alpha, lq))); err != nil {
			return
		}
		err = m.nw.AddTWeights(a, 0, cm.w(lp, lq))
	})

	return err
}

// applyExpansion relabels every sink-side position to alpha and records
// the previous labels for a possible revert.
func (m *Minimizer) applyExpansion(labels *grid.Labels, alpha int, sink func(int) bool) {
	data := labels.Data()
	for p, lp := range data {
		if lp != alpha && sink(p) {
			m.record(p, lp)
			data[p] = alpha
		}
	}
}

// edgeCap clamps a pairwise cost to a usable edge capacity. Terminal
// weights take any finite value and are not clamped.
func edgeCap(c float64) float64 {
	if c < 0 {
		return 0
	}

	return c
}
