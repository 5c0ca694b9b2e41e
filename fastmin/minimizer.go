package fastmin

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"

	"github.com/katalvlaran/gridcut/flow"
	"github.com/katalvlaran/gridcut/grid"
)

// Minimizer runs expansion or swap cycles over one CostModel. It owns the
// flow network arena and scratch buffers, which are reused by every move
// and every run. A Minimizer is not safe for concurrent use.
type Minimizer struct {
	cm   *CostModel
	opts options
	nw   *flow.Network

	nodeOf []int // swap: position → node, -1 when fixed
	posOf  []int // swap: node → position

	changedPos  []int // positions written by the current move
	changedPrev []int // their labels before the move

	stats Stats
}

// NewMinimizer returns a Minimizer for cm.
// Returns ErrShapeMismatch if cm is nil.
func NewMinimizer(cm *CostModel, opts ...Option) (*Minimizer, error) {
	if cm == nil {
		return nil, errors.Wrap(ErrShapeMismatch, "cost model is nil")
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.finish()

	return &Minimizer{
		cm:     cm,
		opts:   o,
		nw:     flow.NewNetwork(cm.size),
		nodeOf: make([]int, cm.size),
	}, nil
}

// Expand minimizes with alpha-expansion. See Minimizer.Expand.
func Expand(ctx context.Context, cm *CostModel, labels *grid.Labels, opts ...Option) (*grid.Labels, error) {
	m, err := NewMinimizer(cm, opts...)
	if err != nil {
		return nil, err
	}

	return m.Expand(ctx, labels)
}

// Swap minimizes with alpha-beta-swap. See Minimizer.Swap.
func Swap(ctx context.Context, cm *CostModel, labels *grid.Labels, opts ...Option) (*grid.Labels, error) {
	m, err := NewMinimizer(cm, opts...)
	if err != nil {
		return nil, err
	}

	return m.Swap(ctx, labels)
}

// Expand runs alpha-expansion cycles (labels 0..L-1 ascending) until a
// cycle changes nothing or the cycle budget is spent.
//
// If labels is nil the all-zero labeling is used; otherwise labels is
// validated and mutated in place, and the same pointer is returned.
// V should be a metric; otherwise the guard (if enabled) keeps the energy
// from rising but the result is a weaker local optimum.
func (m *Minimizer) Expand(ctx context.Context, labels *grid.Labels) (*grid.Labels, error) {
	return m.run(ctx, labels, ExpansionMove)
}

// Swap runs alpha-beta-swap cycles (pairs alpha < beta, lexicographic)
// until a cycle changes nothing or the cycle budget is spent. In-place
// semantics are identical to Expand. V should be a semi-metric.
func (m *Minimizer) Swap(ctx context.Context, labels *grid.Labels) (*grid.Labels, error) {
	return m.run(ctx, labels, SwapMove)
}

// Stats returns the summary of the last run.
func (m *Minimizer) Stats() Stats {
	return m.stats
}

// run is the cycle loop shared by Expand and Swap.
//
// Steps:
//  1. Default or validate the labeling.
//  2. For each cycle while the budget allows:
//     a. For each move in order: build → solve → apply (→ guard).
//     b. Stop if no move changed a label.
//  3. Record the final energy.
func (m *Minimizer) run(ctx context.Context, labels *grid.Labels, kind MoveKind) (*grid.Labels, error) {
	if labels == nil {
		labels = m.cm.NewLabels()
	} else if err := m.cm.validate(labels); err != nil {
		return labels, err
	}

	m.stats = Stats{}
	energy := m.cm.energy(labels)
	defer func() { m.stats.Energy = energy }()

	if m.opts.bounded && m.opts.maxCycles <= 0 {
		return labels, nil
	}

	log := m.opts.log
	cycleMoves := moves(kind, m.cm.numLabels)
	for cycle := 1; !m.opts.bounded || cycle <= m.opts.maxCycles; cycle++ {
		m.stats.Cycles = cycle
		changed := 0
		for _, mv := range cycleMoves {
			ev, err := m.step(ctx, labels, mv, energy)
			if err != nil {
				return labels, err
			}
			ev.Cycle = cycle
			energy = ev.Energy
			changed += ev.Changed
			if log.IsEnabledFor(logging.DEBUG) {
				log.Debugf("cycle %d %s: flow %g, %d changed, accepted %t, energy %g",
					cycle, mv, ev.Flow, ev.Changed, ev.Accepted, ev.Energy)
			}
			if m.opts.observer != nil {
				m.opts.observer(ev)
			}
		}
		m.stats.Changes += changed
		log.Infof("%s cycle %d: %d labels changed, energy %g", kind, cycle, changed, energy)
		if changed == 0 {
			m.stats.Converged = true
			break
		}
	}

	return labels, nil
}

// step solves one move and applies it, reverting it if the energy guard
// rejects the result. energy is the total energy before the move.
func (m *Minimizer) step(ctx context.Context, labels *grid.Labels, mv Move, energy float64) (MoveEvent, error) {
	ev := MoveEvent{Move: mv, Energy: energy, Accepted: true}

	var (
		nodes int
		err   error
	)
	switch mv.Kind {
	case SwapMove:
		nodes, err = m.buildSwap(labels, mv.Alpha, mv.Beta)
	default:
		nodes, err = labels.Len(), m.buildExpansion(labels, mv.Alpha)
	}
	if err != nil {
		return ev, errors.Wrapf(err, "fastmin: building %s", mv)
	}
	if nodes == 0 {
		return ev, nil // swap of two absent labels
	}

	m.stats.Moves++
	cut, err := m.opts.solver.MinCut(ctx, m.nw)
	if err != nil {
		return ev, &MoveError{Move: mv, Err: err}
	}
	if cut == nil || cut.NumNodes() < nodes {
		return ev, &MoveError{Move: mv, Err: errors.Newf("partition does not cover %d nodes", nodes)}
	}
	ev.Flow = cut.Flow()

	m.changedPos, m.changedPrev = m.changedPos[:0], m.changedPrev[:0]
	if mv.Kind == SwapMove {
		m.applySwap(labels, mv.Alpha, mv.Beta, cut.IsSink)
	} else {
		m.applyExpansion(labels, mv.Alpha, cut.IsSink)
	}
	ev.Changed = len(m.changedPos)
	if ev.Changed == 0 {
		return ev, nil
	}

	after := m.cm.energy(labels)
	if m.opts.guard && !(after < energy) {
		m.revert(labels)
		ev.Changed, ev.Accepted = 0, false
		return ev, nil
	}
	ev.Energy = after

	return ev, nil
}

// record remembers that position p held label prev before the current move.
func (m *Minimizer) record(p, prev int) {
	m.changedPos = append(m.changedPos, p)
	m.changedPrev = append(m.changedPrev, prev)
}

// revert restores every position written by the current move.
func (m *Minimizer) revert(labels *grid.Labels) {
	data := labels.Data()
	for i, p := range m.changedPos {
		data[p] = m.changedPrev[i]
	}
	m.changedPos, m.changedPrev = m.changedPos[:0], m.changedPrev[:0]
}
