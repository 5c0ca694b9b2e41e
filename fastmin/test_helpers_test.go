package fastmin_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridcut/fastmin"
	"github.com/katalvlaran/gridcut/grid"
)

// lineModel is the three-position, two-label model:
//
//	D = [[0,5,0],[5,0,5]]   V = [[0,2],[2,0]]
func lineModel(t testing.TB) *fastmin.CostModel {
	t.Helper()
	cm, err := fastmin.NewCostModel(
		[]int{2, 3},
		[]float64{0, 5, 0, 5, 0, 5},
		mat.NewDense(2, 2, []float64{0, 2, 2, 0}),
	)
	require.NoError(t, err)

	return cm
}

// labelsOf wraps data as a 1-D or N-D labeling.
func labelsOf(t testing.TB, shape grid.Shape, data ...int) *grid.Labels {
	t.Helper()
	l, err := grid.FromSlice(shape, data)
	require.NoError(t, err)

	return l
}

// randomModel draws integral unary costs in [0, maxCost) for a grid of the
// given shape over numLabels labels, paired with v.
func randomModel(t testing.TB, seed int64, shape grid.Shape, numLabels int, maxCost int, v mat.Matrix) *fastmin.CostModel {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d := make([]float64, numLabels*shape.Size())
	for i := range d {
		d[i] = float64(rng.Intn(maxCost))
	}
	cm, err := fastmin.NewCostModel(append([]int{numLabels}, shape...), d, v)
	require.NoError(t, err)

	return cm
}

// energyOf evaluates labels, failing the test on error.
func energyOf(t testing.TB, cm *fastmin.CostModel, labels *grid.Labels) float64 {
	t.Helper()
	e, err := fastmin.Energy(cm, labels)
	require.NoError(t, err)

	return e
}

// forEachLabeling calls fn with every labeling of cm's grid (L^S of them).
func forEachLabeling(cm *fastmin.CostModel, fn func(*grid.Labels)) {
	l := cm.NewLabels()
	data := l.Data()
	var rec func(i int)
	rec = func(i int) {
		if i == len(data) {
			fn(l)
			return
		}
		for lbl := 0; lbl < cm.NumLabels(); lbl++ {
			data[i] = lbl
			rec(i + 1)
		}
	}
	rec(0)
}

// bestExpansion returns the lowest energy reachable from labels with a
// single alpha-expansion, by enumerating every subset of positions.
func bestExpansion(t testing.TB, cm *fastmin.CostModel, labels *grid.Labels, alpha int) float64 {
	t.Helper()
	n := labels.Len()
	best := energyOf(t, cm, labels)
	for mask := 1; mask < 1<<n; mask++ {
		cand := labels.Clone()
		for p := 0; p < n; p++ {
			if mask&(1<<p) != 0 {
				cand.Data()[p] = alpha
			}
		}
		if e := energyOf(t, cm, cand); e < best {
			best = e
		}
	}

	return best
}

// bestSwap returns the lowest energy reachable from labels with a single
// alpha-beta-swap, by enumerating every relabeling of the swap subset.
func bestSwap(t testing.TB, cm *fastmin.CostModel, labels *grid.Labels, alpha, beta int) float64 {
	t.Helper()
	var subset []int
	for p, l := range labels.Data() {
		if l == alpha || l == beta {
			subset = append(subset, p)
		}
	}
	best := energyOf(t, cm, labels)
	for mask := 0; mask < 1<<len(subset); mask++ {
		cand := labels.Clone()
		for i, p := range subset {
			if mask&(1<<i) != 0 {
				cand.Data()[p] = beta
			} else {
				cand.Data()[p] = alpha
			}
		}
		if e := energyOf(t, cm, cand); e < best {
			best = e
		}
	}

	return best
}
