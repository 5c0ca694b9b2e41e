package fastmin

import (
	"github.com/katalvlaran/gridcut/grid"
)

// Energy returns E(ℓ) = Σ_p D[ℓ(p), p] + Σ_{(p,q)} V[ℓ(p), ℓ(q)], with each
// axis-aligned neighbor pair counted exactly once (q follows p along an
// axis, so V is read as V[ℓ(p), ℓ(q)]).
//
// Returns ErrShapeMismatch or ErrInvalidLabel if labels does not fit cm.
// Complexity: O(S·N).
func Energy(cm *CostModel, labels *grid.Labels) (float64, error) {
	if cm == nil {
		return 0, ErrShapeMismatch
	}
	if err := cm.validate(labels); err != nil {
		return 0, err
	}

	return cm.energy(labels), nil
}

// energy is Energy without validation.
func (cm *CostModel) energy(labels *grid.Labels) float64 {
	data := labels.Data()
	var unary, pairwise float64
	for p, l := range data {
		unary += cm.d(l, p)
	}
	labels.ForEachPair(func(p, q int) {
		pairwise += cm.w(data[p], data[q])
	})

	return unary + pairwise
}
