package flow

//go:generate mockgen -source=types.go -destination=solver_mock.go -package=flow

import (
	"context"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
)

// ErrNodeOutOfRange is returned when an edge or terminal references a node
// that does not exist in the Network.
var ErrNodeOutOfRange = errors.New("flow: node index out of range")

// ErrUnknownSolver is returned by NewSolver for an unrecognized name.
var ErrUnknownSolver = errors.New("flow: unknown solver")

// EdgeError is returned when an arc or terminal has a negative or
// non-finite capacity. Terminal capacities report To == -1.
type EdgeError struct {
	From, To int
	Cap      float64
}

func (e EdgeError) Error() string {
	if e.To < 0 {
		return fmt.Sprintf("flow: invalid terminal capacity on node %d: %g", e.From, e.Cap)
	}

	return fmt.Sprintf("flow: invalid capacity on edge %d→%d: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures all solvers.
//   - Epsilon: residual capacities ≤ Epsilon count as saturated (default 1e-9).
//   - Log: if non-nil, augmentations are logged at DEBUG level.
type FlowOptions struct {
	Epsilon float64
	Log     *logging.Logger
}

// DefaultOptions returns FlowOptions with Epsilon = 1e-9 and no logging.
func DefaultOptions() FlowOptions {
	return FlowOptions{Epsilon: 1e-9}
}

func (o *FlowOptions) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = 1e-9
	}
}

func (o *FlowOptions) debugf(format string, args ...interface{}) {
	if o.Log != nil && o.Log.IsEnabledFor(logging.DEBUG) {
		o.Log.Debugf(format, args...)
	}
}

// Cut is the partition produced by a MinCutSolver.
type Cut struct {
	sink []bool
	flow float64
}

// IsSink reports whether node ended on the sink side.
// Out-of-range nodes report false.
func (c *Cut) IsSink(node int) bool {
	return node >= 0 && node < len(c.sink) && c.sink[node]
}

// Flow returns the maximum flow value, equal to the capacity of the cut
// (including the terminal offset of the Network).
func (c *Cut) Flow() float64 {
	return c.flow
}

// NumNodes returns the number of regular nodes the cut covers.
func (c *Cut) NumNodes() int {
	return len(c.sink)
}

// NewCut builds a Cut from an explicit partition. Solvers outside this
// package (and test doubles) use it to report their result.
func NewCut(sink []bool, flow float64) *Cut {
	return &Cut{sink: sink, flow: flow}
}

// MinCutSolver computes a minimum s-t cut of a Network.
// Implementations may keep scratch buffers between calls and are not safe
// for concurrent use; the Network is not modified.
type MinCutSolver interface {
	MinCut(ctx context.Context, nw *Network) (*Cut, error)
}

// Solver names accepted by NewSolver.
const (
	SolverDinic       = "dinic"
	SolverEdmondsKarp = "edmonds-karp"
	SolverPushRelabel = "push-relabel"
)

// NewSolver returns the solver registered under name, configured with opts.
// Returns ErrUnknownSolver for any other name.
func NewSolver(name string, opts FlowOptions) (MinCutSolver, error) {
	switch name {
	case SolverDinic:
		return NewDinic(opts), nil
	case SolverEdmondsKarp:
		return NewEdmondsKarp(opts), nil
	case SolverPushRelabel:
		return NewPushRelabel(opts), nil
	default:
		return nil, errors.Wrapf(ErrUnknownSolver, "%q", name)
	}
}
