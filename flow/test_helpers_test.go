package flow_test

import (
	"math/rand"

	"github.com/katalvlaran/gridcut/flow"
)

// recordedEdge mirrors one AddEdge call so tests can price a cut.
type recordedEdge struct {
	u, v         int
	capUV, capVU float64
}

// testNetwork wraps a Network and keeps every edge it was given.
type testNetwork struct {
	*flow.Network
	edges []recordedEdge
}

func newTestNetwork(n int) *testNetwork {
	return &testNetwork{Network: flow.NewNetwork(n)}
}

func (tn *testNetwork) edge(u, v int, capUV, capVU float64) {
	if err := tn.AddEdge(u, v, capUV, capVU); err != nil {
		panic(err)
	}
	tn.edges = append(tn.edges, recordedEdge{u, v, capUV, capVU})
}

func (tn *testNetwork) tweights(node int, capSource, capSink float64) {
	if err := tn.AddTWeights(node, capSource, capSink); err != nil {
		panic(err)
	}
}

// cutCapacity prices the partition cut over tn: terminal residuals, the
// offset, and every arc crossing from source side to sink side.
func cutCapacity(tn *testNetwork, cut *flow.Cut) float64 {
	total := tn.Offset()
	for v := 0; v < tn.NumNodes(); v++ {
		t := tn.Terminal(v)
		if cut.IsSink(v) && t > 0 {
			total += t
		}
		if !cut.IsSink(v) && t < 0 {
			total -= t
		}
	}
	for _, e := range tn.edges {
		su, sv := cut.IsSink(e.u), cut.IsSink(e.v)
		if !su && sv {
			total += e.capUV
		}
		if su && !sv {
			total += e.capVU
		}
	}

	return total
}

// randomGridNetwork builds a w×h four-connected network with integral
// random capacities, the shape the minimizers produce.
func randomGridNetwork(w, h int, seed int64) *testNetwork {
	rng := rand.New(rand.NewSource(seed))
	tn := newTestNetwork(w * h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p := y*w + x
			tn.tweights(p, float64(rng.Intn(10)), float64(rng.Intn(10)))
			if x+1 < w {
				tn.edge(p, p+1, float64(rng.Intn(6)), float64(rng.Intn(6)))
			}
			if y+1 < h {
				tn.edge(p, p+w, float64(rng.Intn(6)), float64(rng.Intn(6)))
			}
		}
	}

	return tn
}

// solverFactories lists every solver under test by name.
var solverFactories = []struct {
	name string
	new  func() flow.MinCutSolver
}{
	{flow.SolverDinic, func() flow.MinCutSolver { return flow.NewDinic(flow.DefaultOptions()) }},
	{flow.SolverEdmondsKarp, func() flow.MinCutSolver { return flow.NewEdmondsKarp(flow.DefaultOptions()) }},
	{flow.SolverPushRelabel, func() flow.MinCutSolver { return flow.NewPushRelabel(flow.DefaultOptions()) }},
}
