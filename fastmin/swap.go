package fastmin

import (
	"github.com/katalvlaran/gridcut/grid"
)

// buildSwap fills m.nw with the binary sub-problem of swapping alpha and
// beta. Only positions currently labeled alpha or beta become nodes, in
// ascending position order; m.posOf maps node to position and m.nodeOf
// maps position to node (-1 for fixed positions).
//
// A node on the source side takes alpha, on the sink side beta:
//   - terminals: D[alpha,p] and D[beta,p], plus V against every fixed
//     neighbor's label gamma (V[alpha,gamma] / V[beta,gamma]).
//   - both ends in the subset: edge p↔q of capacity V[alpha,beta]
//     (V[beta,alpha] back), clamped at zero.
//
// Returns the number of nodes; zero means the move cannot change anything.
// Complexity: O(S·N) time.
func (m *Minimizer) buildSwap(labels *grid.Labels, alpha, beta int) (int, error) {
	cm := m.cm
	data := labels.Data()

	m.posOf = m.posOf[:0]
	for p, l := range data {
		if l == alpha || l == beta {
			m.nodeOf[p] = len(m.posOf)
			m.posOf = append(m.posOf, p)
		} else {
			m.nodeOf[p] = -1
		}
	}
	n := len(m.posOf)
	m.nw.Reset(n)
	if n == 0 {
		return 0, nil
	}

	for i, p := range m.posOf {
		// sink side (beta) pays capSource, source side (alpha) pays capSink
		if err := m.nw.AddTWeights(i, cm.d(beta, p), cm.d(alpha, p)); err != nil {
			return 0, err
		}
	}

	var err error
	labels.ForEachPair(func(p, q int) {
		if err != nil {
			return
		}
		np, nq := m.nodeOf[p], m.nodeOf[q]
		switch {
		case np >= 0 && nq >= 0:
			err = m.nw.AddEdge(np, nq, edgeCap(cm.w(alpha, beta)), edgeCap(cm.w(beta, alpha)))
		case np >= 0:
			gamma := data[q]
			err = m.nw.AddTWeights(np, cm.w(beta, gamma), cm.w(alpha, gamma))
		case nq >= 0:
			gamma := data[p]
			err = m.nw.AddTWeights(nq, cm.w(gamma, beta), cm.w(gamma, alpha))
		}
	})

	return n, err
}

// applySwap gives alpha to source-side nodes and beta to sink-side nodes.
func (m *Minimizer) applySwap(labels *grid.Labels, alpha, beta int, sink func(int) bool) {
	data := labels.Data()
	for i, p := range m.posOf {
		next := alpha
		if sink(i) {
			next = beta
		}
		if data[p] != next {
			m.record(p, data[p])
			data[p] = next
		}
	}
}
