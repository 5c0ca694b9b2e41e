package fastmin

import (
	"sync"

	"github.com/op/go-logging"

	"github.com/katalvlaran/gridcut/flow"
	"github.com/katalvlaran/gridcut/logger"
)

// Option configures a Minimizer before creation.
type Option func(o *options)

type options struct {
	maxCycles int
	bounded   bool
	solver    flow.MinCutSolver
	guard     bool
	log       *logging.Logger
	observer  func(MoveEvent)
}

// defaultOptions: run to convergence, Dinic, energy guard on, quiet logger.
func defaultOptions() options {
	return options{guard: true}
}

// WithMaxCycles stops a run after n cycles even if it has not converged.
// n ≤ 0 performs no moves at all. Without this option a run continues
// until convergence.
func WithMaxCycles(n int) Option {
	return func(o *options) {
		o.maxCycles = n
		o.bounded = true
	}
}

// WithSolver replaces the default Dinic solver. A nil solver is ignored.
func WithSolver(s flow.MinCutSolver) Option {
	return func(o *options) {
		if s != nil {
			o.solver = s
		}
	}
}

// WithEnergyGuard toggles the post-move energy check. When on (the
// default) a move is reverted unless it strictly lowers the total energy.
// When off, every cut is applied as returned.
func WithEnergyGuard(on bool) Option {
	return func(o *options) { o.guard = on }
}

// WithLogger routes cycle summaries (INFO) and move details (DEBUG) to log.
func WithLogger(log *logging.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithObserver registers fn to be called after every solved move.
func WithObserver(fn func(MoveEvent)) Option {
	return func(o *options) { o.observer = fn }
}

// finish fills defaults for anything the caller left unset.
func (o *options) finish() {
	if o.solver == nil {
		o.solver = flow.NewDinic(flow.DefaultOptions())
	}
	if o.log == nil {
		o.log = quietLogger()
	}
}

var (
	quietOnce sync.Once
	quietLog  *logging.Logger
)

// quietLogger is the WARNING-level "fastmin" logger used when the caller
// supplies none. It is built once so the module level a host program sets
// afterwards is not overwritten by later Minimizers.
func quietLogger() *logging.Logger {
	quietOnce.Do(func() {
		quietLog = logger.NewLogger("WARNING", "fastmin")
	})

	return quietLog
}
