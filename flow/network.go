package flow

import (
	"math"

	"github.com/cockroachdb/errors"
)

// arc is one directed capacity pair between two regular nodes.
type arc struct {
	u, v         int
	capUV, capVU float64
}

// Network is a flow network over regular nodes 0..NumNodes()-1 with two
// implicit terminals, the source and the sink.
//
// Each node carries a single signed terminal residual: positive values are
// capacity source→node, negative values are capacity node→sink. The part
// of both terminal capacities that cancels out is accumulated in Offset,
// because a node must pay at least min(capSource, capSink) whichever side
// it lands on.
//
// Networks are reused: Reset clears all nodes and arcs but keeps the
// backing storage.
type Network struct {
	term   []float64
	arcs   []arc
	offset float64
}

// NewNetwork returns a network with n regular nodes and no edges.
func NewNetwork(n int) *Network {
	nw := &Network{}
	nw.Reset(n)

	return nw
}

// Reset clears the network to n regular nodes with zero terminal
// capacities and no arcs, reusing allocated storage.
// Complexity: O(n).
func (nw *Network) Reset(n int) {
	if n < 0 {
		n = 0
	}
	if cap(nw.term) < n {
		nw.term = make([]float64, n)
	} else {
		nw.term = nw.term[:n]
		for i := range nw.term {
			nw.term[i] = 0
		}
	}
	nw.arcs = nw.arcs[:0]
	nw.offset = 0
}

// NumNodes returns the number of regular nodes.
func (nw *Network) NumNodes() int {
	return len(nw.term)
}

// NumEdges returns the number of arc pairs added with AddEdge.
func (nw *Network) NumEdges() int {
	return len(nw.arcs)
}

// AddNode appends a regular node with zero terminal capacities and returns
// its index.
func (nw *Network) AddNode() int {
	nw.term = append(nw.term, 0)

	return len(nw.term) - 1
}

// AddTWeights adds capSource to the source→node capacity and capSink to
// the node→sink capacity. Calls accumulate.
// Returns ErrNodeOutOfRange or EdgeError for a non-finite capacity.
func (nw *Network) AddTWeights(node int, capSource, capSink float64) error {
	if node < 0 || node >= len(nw.term) {
		return errors.Wrapf(ErrNodeOutOfRange, "terminal on node %d of %d", node, len(nw.term))
	}
	if !finite(capSource) {
		return EdgeError{From: node, To: -1, Cap: capSource}
	}
	if !finite(capSink) {
		return EdgeError{From: node, To: -1, Cap: capSink}
	}

	// Fold previous residual back into explicit (source, sink) capacities.
	src, snk := capSource, capSink
	if r := nw.term[node]; r > 0 {
		src += r
	} else {
		snk -= r
	}
	common := math.Min(src, snk)
	nw.offset += common
	nw.term[node] = (src - common) - (snk - common)

	return nil
}

// AddEdge adds an arc u→v of capacity capUV and an arc v→u of capacity capVU.
// Self-loops are ignored. Returns ErrNodeOutOfRange or EdgeError for
// negative or non-finite capacities.
func (nw *Network) AddEdge(u, v int, capUV, capVU float64) error {
	n := len(nw.term)
	if u < 0 || u >= n || v < 0 || v >= n {
		return errors.Wrapf(ErrNodeOutOfRange, "edge %d→%d with %d nodes", u, v, n)
	}
	if !finite(capUV) || capUV < 0 {
		return EdgeError{From: u, To: v, Cap: capUV}
	}
	if !finite(capVU) || capVU < 0 {
		return EdgeError{From: v, To: u, Cap: capVU}
	}
	if u == v {
		return nil
	}
	nw.arcs = append(nw.arcs, arc{u: u, v: v, capUV: capUV, capVU: capVU})

	return nil
}

// Terminal returns the signed terminal residual of node: positive is
// source→node capacity, negative is node→sink capacity.
func (nw *Network) Terminal(node int) float64 {
	if node < 0 || node >= len(nw.term) {
		return 0
	}

	return nw.term[node]
}

// Offset returns the flow already accounted for by cancelling terminal
// capacities in AddTWeights.
func (nw *Network) Offset() float64 {
	return nw.offset
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
