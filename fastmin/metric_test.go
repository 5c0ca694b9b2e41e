package fastmin_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridcut/fastmin"
)

// TestCheckMetric classifies common pairwise models.
func TestCheckMetric(t *testing.T) {
	quadratic := mat.NewDense(3, 3, []float64{
		0, 1, 4,
		1, 0, 1,
		4, 1, 0,
	})
	cases := []struct {
		name      string
		v         mat.Matrix
		semiErr   error
		metricErr error
	}{
		{"Potts", fastmin.PottsMatrix(4, 2), nil, nil},
		{"TruncatedLinear", fastmin.TruncatedLinearMatrix(5, 1, 2), nil, nil},
		{"Quadratic", quadratic, nil, fastmin.ErrNotMetric},
		{"Asymmetric", mat.NewDense(2, 2, []float64{0, 1, 2, 0}), fastmin.ErrNotSemiMetric, fastmin.ErrNotSemiMetric},
		{"NonZeroDiagonal", mat.NewDense(2, 2, []float64{1, 1, 1, 0}), fastmin.ErrNotSemiMetric, fastmin.ErrNotSemiMetric},
		{"ZeroOffDiagonal", mat.NewDense(2, 2, []float64{0, 0, 0, 0}), nil, fastmin.ErrNotMetric},
		{"NegativeOffDiagonal", mat.NewDense(2, 2, []float64{0, -1, -1, 0}), fastmin.ErrNotSemiMetric, fastmin.ErrNotSemiMetric},
		{"NonSquare", mat.NewDense(2, 3, nil), fastmin.ErrShapeMismatch, fastmin.ErrShapeMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.semiErr == nil {
				require.NoError(t, fastmin.CheckSemiMetric(tc.v))
			} else {
				require.ErrorIs(t, fastmin.CheckSemiMetric(tc.v), tc.semiErr)
			}
			if tc.metricErr == nil {
				require.NoError(t, fastmin.CheckMetric(tc.v))
			} else {
				require.ErrorIs(t, fastmin.CheckMetric(tc.v), tc.metricErr)
			}
		})
	}
}

// TestTruncatedLinearMatrix checks the entries of min(λ|a−b|, limit).
func TestTruncatedLinearMatrix(t *testing.T) {
	v := fastmin.TruncatedLinearMatrix(4, 2, 5)
	require.Equal(t, 0.0, v.At(1, 1))
	require.Equal(t, 2.0, v.At(0, 1))
	require.Equal(t, 4.0, v.At(3, 1))
	require.Equal(t, 5.0, v.At(0, 3))
}
