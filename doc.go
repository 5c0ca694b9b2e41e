// Package gridcut minimizes discrete labeling energies on N-dimensional
// grids with graph-cut move-making:
//
//	E(ℓ) = Σ_p D[ℓ(p), p] + Σ_{(p,q)} V[ℓ(p), ℓ(q)]
//
// where p ranges over grid positions and (p, q) over axis-aligned
// neighbor pairs.
//
// The work is split across subpackages:
//
//	grid/          labelings over N-D shapes, neighbor-pair enumeration, regions
//	flow/          arena flow network and min-cut solvers (Dinic, Edmonds–Karp, push–relabel)
//	fastmin/       cost model, energy, alpha-expansion and alpha-beta-swap
//	logger/        op/go-logging setup shared by the library and the command
//	cmd/gridcut/   command line front end over JSON problem files
//
// Quick example, a three-pixel line whose middle pixel prefers label 1:
//
//	cm, _ := fastmin.NewCostModel([]int{2, 3},
//		[]float64{0, 5, 0, 5, 0, 5},
//		mat.NewDense(2, 2, []float64{0, 2, 2, 0}))
//	labels, _ := fastmin.Expand(ctx, cm, nil) // [0 1 0], energy 4
//
//	go get github.com/katalvlaran/gridcut
package gridcut
