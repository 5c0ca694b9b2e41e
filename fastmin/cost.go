package fastmin

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridcut/grid"
)

// CostModel is an immutable view of unary costs D, shaped (L, S1, …, SN),
// and pairwise costs V, shaped (L, L).
type CostModel struct {
	numLabels int
	shape     grid.Shape
	size      int
	unary     []float64 // label-major: unary[label*size + pos]
	pairwise  *mat.Dense
	v         []float64 // row-major copy of pairwise for hot loops
}

// NewCostModel validates and copies D and V.
//
// dShape is (L, S1, …, SN) and d holds D in row-major order, so that
// D[label, pos] = d[label*S + pos] with S = S1·…·SN. v is any gonum
// matrix; it is copied.
//
// Returns ErrShapeMismatch if dShape has fewer than two axes or a
// non-positive extent, if len(d) disagrees with dShape, if V is not square,
// or if V's size differs from L. Returns ErrInvalidCost for NaN or ±Inf
// entries. Metric properties of V are NOT checked.
//
// Complexity: O(L·S + L²) time and memory.
func NewCostModel(dShape []int, d []float64, v mat.Matrix) (*CostModel, error) {
	if len(dShape) < 2 {
		return nil, errors.Wrapf(ErrShapeMismatch, "unary shape %v must be (L, S1, …, SN)", dShape)
	}
	numLabels := dShape[0]
	shape := grid.Shape(dShape[1:]).Clone()
	if numLabels <= 0 || shape.Validate() != nil {
		return nil, errors.Wrapf(ErrShapeMismatch, "unary shape %v has a non-positive extent", dShape)
	}
	size := shape.Size()
	if len(d) != numLabels*size {
		return nil, errors.Wrapf(ErrShapeMismatch, "unary data has %d values, shape %v needs %d", len(d), dShape, numLabels*size)
	}
	if v == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "pairwise matrix is nil")
	}
	rows, cols := v.Dims()
	if rows != cols {
		return nil, errors.Wrapf(ErrShapeMismatch, "pairwise matrix is %d×%d, not square", rows, cols)
	}
	if rows != numLabels {
		return nil, errors.Wrapf(ErrShapeMismatch, "pairwise matrix is %d×%d but there are %d labels", rows, cols, numLabels)
	}

	unary := make([]float64, len(d))
	for i, c := range d {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, errors.Wrapf(ErrInvalidCost, "unary cost %g at offset %d", c, i)
		}
		unary[i] = c
	}
	flat := make([]float64, numLabels*numLabels)
	for a := 0; a < numLabels; a++ {
		for b := 0; b < numLabels; b++ {
			c := v.At(a, b)
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return nil, errors.Wrapf(ErrInvalidCost, "pairwise cost V[%d,%d] = %g", a, b, c)
			}
			flat[a*numLabels+b] = c
		}
	}

	return &CostModel{
		numLabels: numLabels,
		shape:     shape,
		size:      size,
		unary:     unary,
		pairwise:  mat.NewDense(numLabels, numLabels, append([]float64(nil), flat...)),
		v:         flat,
	}, nil
}

// NumLabels returns L.
func (cm *CostModel) NumLabels() int { return cm.numLabels }

// Shape returns the spatial extents (S1, …, SN).
func (cm *CostModel) Shape() grid.Shape { return cm.shape.Clone() }

// Size returns the number of grid positions S1·…·SN.
func (cm *CostModel) Size() int { return cm.size }

// Unary returns D[label, pos] for a row-major position index.
// It panics on out-of-range arguments, like a slice index.
func (cm *CostModel) Unary(label, pos int) float64 {
	if pos < 0 || pos >= cm.size {
		panic("fastmin: position out of range")
	}

	return cm.unary[label*cm.size+pos]
}

// Pairwise returns V[a, b].
func (cm *CostModel) Pairwise(a, b int) float64 {
	return cm.pairwise.At(a, b)
}

// PairwiseMatrix returns a copy of V.
func (cm *CostModel) PairwiseMatrix() *mat.Dense {
	return mat.DenseCopyOf(cm.pairwise)
}

// NewLabels returns the all-zero labeling matching the model's shape.
func (cm *CostModel) NewLabels() *grid.Labels {
	l, _ := grid.NewLabels(cm.shape...) // shape validated in NewCostModel

	return l
}

// d is the unchecked D[label, pos].
func (cm *CostModel) d(label, pos int) float64 {
	return cm.unary[label*cm.size+pos]
}

// w is the unchecked V[a, b].
func (cm *CostModel) w(a, b int) float64 {
	return cm.v[a*cm.numLabels+b]
}

// validate reports ErrShapeMismatch if l's shape differs from the model's,
// ErrInvalidLabel if any label lies outside [0, L).
func (cm *CostModel) validate(l *grid.Labels) error {
	if l == nil {
		return errors.Wrap(ErrShapeMismatch, "labeling is nil")
	}
	if !l.Shape().Equal(cm.shape) {
		return errors.Wrapf(ErrShapeMismatch, "labeling shape %v, cost model shape %v", l.Shape(), cm.shape)
	}
	for pos, label := range l.Data() {
		if label < 0 || label >= cm.numLabels {
			return errors.Wrapf(ErrInvalidLabel, "label %d at position %d, want [0,%d)", label, pos, cm.numLabels)
		}
	}

	return nil
}
