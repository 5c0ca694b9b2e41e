package flow

import (
	"context"
	"math"
)

// Dinic computes minimum cuts with Dinic’s algorithm (level graph +
// blocking flows). The zero value is not usable; call NewDinic.
type Dinic struct {
	opts  FlowOptions
	res   residual
	level []int
	iter  []int
}

// NewDinic returns a Dinic solver. Zero or negative Epsilon is replaced by
// the default.
func NewDinic(opts FlowOptions) *Dinic {
	opts.normalize()

	return &Dinic{opts: opts}
}

// MinCut computes the maximum flow of nw and returns the induced cut.
//
// Steps:
//  1. Load nw into the residual arena (O(V + E)).
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation (O(1)).
//     b. BFS from the source to build levels (O(V + E)).
//     c. If the sink has no level, stop.
//     d. DFS-based blocking flow along level+1 arcs, advancing a per-node
//     arc iterator so that each arc is tried at most once per phase.
//  3. Extract the sink side by reverse BFS from the sink.
//
// Complexity:
//
//	Time:   O(V² · E) worst case.
//	Memory: O(V + E), reused across calls.
func (d *Dinic) MinCut(ctx context.Context, nw *Network) (*Cut, error) {
	eps := d.opts.Epsilon
	r := &d.res
	r.build(nw, eps)
	d.level = resizeInt(d.level, r.n)
	d.iter = resizeInt(d.iter, r.n)

	maxFlow := nw.Offset()
	for {
		// 2a) Cancellation check before BFS
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// 2b) BFS to compute levels
		if !d.buildLevels() {
			break
		}

		// 2d) Blocking flow
		copy(d.iter, r.head)
		for {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			pushed := d.push(r.source, math.Inf(1))
			if pushed <= eps {
				break
			}
			maxFlow += pushed
			d.opts.debugf("Dinic: pushed %g, total %g", pushed, maxFlow)
		}
	}

	return r.cut(nw.NumNodes(), eps, maxFlow), nil
}

// buildLevels assigns BFS distances from the source over arcs with
// residual capacity and reports whether the sink was reached.
func (d *Dinic) buildLevels() bool {
	r := &d.res
	eps := d.opts.Epsilon
	for i := range d.level {
		d.level[i] = -1
	}
	d.level[r.source] = 0
	r.queue = append(r.queue[:0], r.source)
	for i := 0; i < len(r.queue); i++ {
		u := r.queue[i]
		for a := r.head[u]; a >= 0; a = r.next[a] {
			v := r.to[a]
			if r.cap[a] > eps && d.level[v] < 0 {
				d.level[v] = d.level[u] + 1
				r.queue = append(r.queue, v)
			}
		}
	}

	return d.level[r.sink] >= 0
}

// push recursively sends up to available units from u toward the sink
// along the level graph, updating residual capacities in place, and
// returns the amount actually sent.
func (d *Dinic) push(u int, available float64) float64 {
	r := &d.res
	if u == r.sink {
		return available
	}
	eps := d.opts.Epsilon
	for ; d.iter[u] >= 0; d.iter[u] = r.next[d.iter[u]] {
		a := d.iter[u]
		v := r.to[a]
		if r.cap[a] <= eps || d.level[v] != d.level[u]+1 {
			continue
		}
		pushed := d.push(v, math.Min(available, r.cap[a]))
		if pushed > eps {
			r.cap[a] -= pushed
			r.cap[a^1] += pushed

			return pushed
		}
	}

	return 0
}
