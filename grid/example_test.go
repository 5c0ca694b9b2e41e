package grid_test

import (
	"fmt"

	"github.com/katalvlaran/gridcut/grid"
)

// ExampleForEachPair lists the neighbor pairs of a 2×2 grid.
//
//	0 1
//	2 3
func ExampleForEachPair() {
	grid.ForEachPair(grid.Shape{2, 2}, func(p, q int) {
		fmt.Printf("%d-%d\n", p, q)
	})
	// Output:
	// 0-2
	// 1-3
	// 0-1
	// 2-3
}

// ExampleRegions counts the equal-label islands of a 1-D strip.
func ExampleRegions() {
	l, _ := grid.FromSlice(grid.Shape{6}, []int{1, 1, 0, 1, 2, 2})
	ids, count := grid.Regions(l)
	fmt.Println(count, ids)
	// Output:
	// 4 [0 0 1 2 3 3]
}
