package fastmin_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/gridcut/fastmin"
	"github.com/katalvlaran/gridcut/grid"
)

func benchmarkMinimize(b *testing.B, kind fastmin.MoveKind) {
	cm := randomModel(b, 1, grid.Shape{64, 64}, 4, 20, fastmin.TruncatedLinearMatrix(4, 3, 8))
	m, err := fastmin.NewMinimizer(cm)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		labels := cm.NewLabels()
		if kind == fastmin.SwapMove {
			_, err = m.Swap(context.Background(), labels)
		} else {
			_, err = m.Expand(context.Background(), labels)
		}
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkExpand64x64(b *testing.B) { benchmarkMinimize(b, fastmin.ExpansionMove) }
func BenchmarkSwap64x64(b *testing.B)   { benchmarkMinimize(b, fastmin.SwapMove) }
