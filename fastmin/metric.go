package fastmin

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// metricTol is the absolute tolerance of the metric checks.
const metricTol = 1e-9

// CheckSemiMetric reports whether v is a semi-metric: square, symmetric,
// zero on the diagonal and non-negative off it. This is the precondition
// of Swap. Returns ErrShapeMismatch or ErrNotSemiMetric
// naming the first violation found.
func CheckSemiMetric(v mat.Matrix) error {
	if v == nil {
		return errors.Wrap(ErrShapeMismatch, "pairwise matrix is nil")
	}
	n, c := v.Dims()
	if n != c {
		return errors.Wrapf(ErrShapeMismatch, "pairwise matrix is %d×%d, not square", n, c)
	}
	if !mat.EqualApprox(v, v.T(), metricTol) {
		return errors.Wrap(ErrNotSemiMetric, "V is not symmetric")
	}
	for a := 0; a < n; a++ {
		if x := v.At(a, a); x < -metricTol || x > metricTol {
			return errors.Wrapf(ErrNotSemiMetric, "V[%d,%d] = %g, want 0", a, a, x)
		}
		for b := a + 1; b < n; b++ {
			if x := v.At(a, b); x < -metricTol {
				return errors.Wrapf(ErrNotSemiMetric, "V[%d,%d] = %g, want ≥ 0", a, b, x)
			}
		}
	}

	return nil
}

// CheckMetric reports whether v is a metric: a semi-metric that is
// positive off the diagonal (V[a,b] = 0 only for a = b) and satisfies the
// triangle inequality V[a,c] ≤ V[a,b] + V[b,c]. This is the
// precondition of Expand. Returns ErrShapeMismatch, ErrNotSemiMetric or
// ErrNotMetric.
// Complexity: O(L³).
func CheckMetric(v mat.Matrix) error {
	if err := CheckSemiMetric(v); err != nil {
		return err
	}
	n, _ := v.Dims()
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if x := v.At(a, b); x <= metricTol {
				return errors.Wrapf(ErrNotMetric, "V[%d,%d] = %g, want > 0", a, b, x)
			}
		}
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				if v.At(a, c) > v.At(a, b)+v.At(b, c)+metricTol {
					return errors.Wrapf(ErrNotMetric, "V[%d,%d] = %g > V[%d,%d] + V[%d,%d] = %g",
						a, c, v.At(a, c), a, b, b, c, v.At(a, b)+v.At(b, c))
				}
			}
		}
	}

	return nil
}

// PottsMatrix returns the L×L Potts metric λ·[a ≠ b]. numLabels must be
// positive.
func PottsMatrix(numLabels int, lambda float64) *mat.Dense {
	v := mat.NewDense(numLabels, numLabels, nil)
	for a := 0; a < numLabels; a++ {
		for b := 0; b < numLabels; b++ {
			if a != b {
				v.Set(a, b, lambda)
			}
		}
	}

	return v
}

// TruncatedLinearMatrix returns the L×L metric min(λ·|a − b|, limit).
func TruncatedLinearMatrix(numLabels int, lambda, limit float64) *mat.Dense {
	v := mat.NewDense(numLabels, numLabels, nil)
	for a := 0; a < numLabels; a++ {
		for b := 0; b < numLabels; b++ {
			d := a - b
			if d < 0 {
				d = -d
			}
			x := lambda * float64(d)
			if x > limit {
				x = limit
			}
			v.Set(a, b, x)
		}
	}

	return v
}
