package grid_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcut/grid"
)

// TestRegions_2D finds equal-label regions under axis-aligned adjacency.
//
//	0 0 1
//	2 0 1
//	2 2 0
func TestRegions_2D(t *testing.T) {
	l, err := grid.FromSlice(grid.Shape{3, 3}, []int{
		0, 0, 1,
		2, 0, 1,
		2, 2, 0,
	})
	require.NoError(t, err)

	ids, count := grid.Regions(l)
	require.Equal(t, 4, count)
	require.Equal(t, []int{
		0, 0, 1,
		2, 0, 1,
		2, 2, 3,
	}, ids)
}

// TestRegions_Uniform has a single region.
func TestRegions_Uniform(t *testing.T) {
	l, err := grid.NewLabels(4, 4, 2)
	require.NoError(t, err)
	_, count := grid.Regions(l)
	require.Equal(t, 1, count)
}
