package flow

import (
	"container/heap"
	"context"
)

// PushRelabel computes minimum cuts with the highest-label variant of the
// push/relabel algorithm. Node heights start at their exact BFS distance
// to the sink; nodes whose height reaches the node count can no longer
// reach the sink and are retired, so the solver stops at a maximum
// preflow. That is sufficient for the cut: the sink side is exactly the
// set of nodes that can still reach the sink.
type PushRelabel struct {
	opts    FlowOptions
	res     residual
	height  []int
	excess  []float64
	current []int
	active  heightHeap
}

// NewPushRelabel returns a push/relabel solver.
func NewPushRelabel(opts FlowOptions) *PushRelabel {
	opts.normalize()

	return &PushRelabel{opts: opts}
}

// MinCut computes a maximum preflow of nw and returns the induced cut.
//
// Steps:
//  1. Load nw into the residual arena; heights = BFS distance to sink,
//     unreachable nodes get height n (retired).
//  2. Saturate all source arcs, activating their heads.
//  3. Pop the highest active node and discharge it: push along admissible
//     arcs (height drop of exactly one), relabel when the arc list is
//     exhausted, retire once height ≥ n.
//  4. Extract the sink side by reverse BFS from the sink.
//
// Complexity:
//
//	Time:   O(V² · √E).
//	Memory: O(V + E).
func (pr *PushRelabel) MinCut(ctx context.Context, nw *Network) (*Cut, error) {
	eps := pr.opts.Epsilon
	r := &pr.res
	r.build(nw, eps)
	pr.height = resizeInt(pr.height, r.n)
	pr.current = resizeInt(pr.current, r.n)
	pr.excess = resizeFloat(pr.excess, r.n)
	for i := range pr.excess {
		pr.excess[i] = 0
	}
	copy(pr.current, r.head)
	pr.initHeights()
	pr.active.reset(pr.height)

	// 2) Saturating pushes out of the source.
	for a := r.head[r.source]; a >= 0; a = r.next[a] {
		c := r.cap[a]
		if c <= eps {
			continue
		}
		v := r.to[a]
		r.cap[a] = 0
		r.cap[a^1] += c
		pr.excess[v] += c
		pr.activate(v)
	}

	// 3) Highest-label discharge loop.
	for pr.active.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		u := heap.Pop(&pr.active).(int)
		pr.discharge(u)
	}

	flow := nw.Offset() + pr.excess[r.sink]
	pr.opts.debugf("PushRelabel: preflow into sink %g", pr.excess[r.sink])

	return r.cut(nw.NumNodes(), eps, flow), nil
}

// initHeights sets each node's height to its residual distance to the sink.
func (pr *PushRelabel) initHeights() {
	r := &pr.res
	eps := pr.opts.Epsilon
	for i := range pr.height {
		pr.height[i] = r.n
	}
	pr.height[r.sink] = 0
	r.queue = append(r.queue[:0], r.sink)
	for i := 0; i < len(r.queue); i++ {
		w := r.queue[i]
		for a := r.head[w]; a >= 0; a = r.next[a] {
			u := r.to[a]
			if u != r.source && pr.height[u] == r.n && r.cap[a^1] > eps {
				pr.height[u] = pr.height[w] + 1
				r.queue = append(r.queue, u)
			}
		}
	}
	pr.height[r.source] = r.n
}

// activate queues v if it just gained excess and can still reach the sink.
func (pr *PushRelabel) activate(v int) {
	r := &pr.res
	if v == r.source || v == r.sink || pr.height[v] >= r.n {
		return
	}
	if pr.excess[v] > pr.opts.Epsilon && !pr.active.contains(v) {
		heap.Push(&pr.active, v)
	}
}

// discharge pushes all excess out of u, relabeling u as required.
func (pr *PushRelabel) discharge(u int) {
	r := &pr.res
	eps := pr.opts.Epsilon
	for pr.excess[u] > eps {
		// "Relabel" case: no admissible arc left. Lift u one above its
		// lowest residual neighbor so flow keeps moving downhill.
		if pr.current[u] < 0 {
			minHeight := 2 * r.n
			for a := r.head[u]; a >= 0; a = r.next[a] {
				if r.cap[a] > eps && pr.height[r.to[a]] < minHeight {
					minHeight = pr.height[r.to[a]]
				}
			}
			pr.height[u] = minHeight + 1
			pr.current[u] = r.head[u]
			if pr.height[u] >= r.n {
				return // retired: the sink is unreachable from u
			}
		}

		a := pr.current[u]
		v := r.to[a]
		if c := r.cap[a]; c > eps && pr.height[u] == pr.height[v]+1 {
			delta := pr.excess[u]
			if c < delta {
				delta = c
			}
			r.cap[a] -= delta
			r.cap[a^1] += delta
			pr.excess[u] -= delta
			pr.excess[v] += delta
			pr.activate(v)
			if pr.excess[u] <= eps {
				return
			}
		}
		pr.current[u] = r.next[a]
	}
}

// heightHeap orders nodes on descending height.
type heightHeap struct {
	height []int
	nodes  []int
	queued []bool
}

// reset empties the heap and binds it to height, reusing storage.
func (h *heightHeap) reset(height []int) {
	h.height = height
	h.nodes = h.nodes[:0]
	h.queued = resizeBool(h.queued, len(height))
	for i := range h.queued {
		h.queued[i] = false
	}
}

func (h *heightHeap) contains(v int) bool {
	return h.queued[v]
}

func (h heightHeap) Len() int           { return len(h.nodes) }
func (h heightHeap) Less(i, j int) bool { return h.height[h.nodes[i]] > h.height[h.nodes[j]] }
func (h heightHeap) Swap(i, j int)      { h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i] }

func (h *heightHeap) Push(x interface{}) {
	v := x.(int)
	h.queued[v] = true
	h.nodes = append(h.nodes, v)
}

func (h *heightHeap) Pop() interface{} {
	v := h.nodes[len(h.nodes)-1]
	h.nodes = h.nodes[:len(h.nodes)-1]
	h.queued[v] = false

	return v
}
