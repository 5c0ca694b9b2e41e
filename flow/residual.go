package flow

// residual is the arena representation shared by all solvers: the regular
// nodes of a Network plus source (index n) and sink (index n+1), with arcs
// stored in pairs so that arc a and a^1 are mutual reverses.
type residual struct {
	n            int // total node count including terminals
	source, sink int
	head         []int // first arc of each node, -1 if none
	next         []int // next arc of the same tail node
	to           []int
	cap          []float64
	queue        []int
	seen         []bool
}

// build loads nw into r, reusing r's slices.
// Complexity: O(V + E).
func (r *residual) build(nw *Network, eps float64) {
	nodes := nw.NumNodes()
	r.n = nodes + 2
	r.source, r.sink = nodes, nodes+1
	r.head = resizeInt(r.head, r.n)
	for i := range r.head {
		r.head[i] = -1
	}
	r.next = r.next[:0]
	r.to = r.to[:0]
	r.cap = r.cap[:0]

	for v, t := range nw.term {
		switch {
		case t > eps:
			r.addPair(r.source, v, t, 0)
		case t < -eps:
			r.addPair(v, r.sink, -t, 0)
		}
	}
	for _, a := range nw.arcs {
		if a.capUV <= eps && a.capVU <= eps {
			continue
		}
		r.addPair(a.u, a.v, a.capUV, a.capVU)
	}
}

// addPair appends arc u→v (capacity c) and its reverse v→u (capacity rc).
func (r *residual) addPair(u, v int, c, rc float64) {
	r.to = append(r.to, v, u)
	r.cap = append(r.cap, c, rc)
	r.next = append(r.next, r.head[u], r.head[v])
	a := len(r.to) - 2
	r.head[u] = a
	r.head[v] = a + 1
}

// cut marks as sink side every regular node from which the sink is still
// reachable in the residual network (reverse BFS from the sink).
func (r *residual) cut(nodes int, eps, flow float64) *Cut {
	r.seen = resizeBool(r.seen, r.n)
	for i := range r.seen {
		r.seen[i] = false
	}
	r.queue = append(r.queue[:0], r.sink)
	r.seen[r.sink] = true
	for i := 0; i < len(r.queue); i++ {
		w := r.queue[i]
		for a := r.head[w]; a >= 0; a = r.next[a] {
			u := r.to[a]
			// a is w→u; its pair a^1 is u→w.
			if !r.seen[u] && r.cap[a^1] > eps {
				r.seen[u] = true
				r.queue = append(r.queue, u)
			}
		}
	}

	sink := make([]bool, nodes)
	copy(sink, r.seen[:nodes])

	return &Cut{sink: sink, flow: flow}
}

func resizeInt(s []int, n int) []int {
	if cap(s) < n {
		return make([]int, n)
	}

	return s[:n]
}

func resizeBool(s []bool, n int) []bool {
	if cap(s) < n {
		return make([]bool, n)
	}

	return s[:n]
}

func resizeFloat(s []float64, n int) []float64 {
	if cap(s) < n {
		return make([]float64, n)
	}

	return s[:n]
}
