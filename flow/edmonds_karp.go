package flow

import (
	"context"
	"math"
)

// EdmondsKarp computes minimum cuts by repeatedly augmenting along
// shortest (fewest-arc) paths found with BFS.
type EdmondsKarp struct {
	opts   FlowOptions
	res    residual
	parent []int // arc used to reach each node, -1 if unreached
}

// NewEdmondsKarp returns an Edmonds–Karp solver.
func NewEdmondsKarp(opts FlowOptions) *EdmondsKarp {
	opts.normalize()

	return &EdmondsKarp{opts: opts}
}

// MinCut computes the maximum flow of nw and returns the induced cut.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func (ek *EdmondsKarp) MinCut(ctx context.Context, nw *Network) (*Cut, error) {
	eps := ek.opts.Epsilon
	r := &ek.res
	r.build(nw, eps)
	ek.parent = resizeInt(ek.parent, r.n)

	maxFlow := nw.Offset()
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bottle := ek.augmentingPath()
		if bottle <= eps {
			break
		}
		// Augment along the recorded parent arcs, sink back to source.
		for v := r.sink; v != r.source; {
			a := ek.parent[v]
			r.cap[a] -= bottle
			r.cap[a^1] += bottle
			v = r.to[a^1]
		}
		maxFlow += bottle
		ek.opts.debugf("EdmondsKarp: augmented %g, total %g", bottle, maxFlow)
	}

	return r.cut(nw.NumNodes(), eps, maxFlow), nil
}

// augmentingPath runs BFS from the source and returns the bottleneck
// capacity of the shortest path to the sink, or 0 if none exists.
func (ek *EdmondsKarp) augmentingPath() float64 {
	r := &ek.res
	eps := ek.opts.Epsilon
	for i := range ek.parent {
		ek.parent[i] = -1
	}
	r.queue = append(r.queue[:0], r.source)
	reached := false
	for i := 0; i < len(r.queue) && !reached; i++ {
		u := r.queue[i]
		for a := r.head[u]; a >= 0; a = r.next[a] {
			v := r.to[a]
			if v == r.source || ek.parent[v] >= 0 || r.cap[a] <= eps {
				continue
			}
			ek.parent[v] = a
			if v == r.sink {
				reached = true
				break
			}
			r.queue = append(r.queue, v)
		}
	}
	if !reached {
		return 0
	}

	bottle := math.Inf(1)
	for v := r.sink; v != r.source; {
		a := ek.parent[v]
		bottle = math.Min(bottle, r.cap[a])
		v = r.to[a^1]
	}

	return bottle
}
