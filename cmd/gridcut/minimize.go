package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/gridcut/fastmin"
	"github.com/katalvlaran/gridcut/flow"
	"github.com/katalvlaran/gridcut/grid"
	"github.com/katalvlaran/gridcut/logger"
)

var minimizeCommand = cli.Command{
	Action:    minimizeAction,
	Name:      "minimize",
	Usage:     "Minimize the energy of a problem file.",
	ArgsUsage: "<problem.json>",
	Flags: []cli.Flag{
		&AlgorithmFlag,
		&MaxCyclesFlag,
		&SolverFlag,
		&NoGuardFlag,
		&OutputFlag,
		&logger.LogLevelFlag,
	},
}

func minimizeAction(ctx *cli.Context) error {
	cfg, err := NewConfig(ctx)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "gridcut")

	return minimize(ctx.Context, cfg, ctx.App.Writer, ctx.App.ErrWriter, log)
}

// minimize runs the configured algorithm, prints the cycle report to
// report and writes the result to cfg.Output, or to out if unset.
func minimize(ctx context.Context, cfg *Config, out, report io.Writer, log *logging.Logger) error {
	if err := cfg.validateAlgorithm(); err != nil {
		return err
	}
	p, err := loadProblem(cfg.ProblemFile)
	if err != nil {
		return err
	}
	solver, err := flow.NewSolver(cfg.Solver, flow.FlowOptions{Epsilon: flow.DefaultOptions().Epsilon, Log: log})
	if err != nil {
		return err
	}

	rep := &cycleReport{}
	opts := []fastmin.Option{
		fastmin.WithSolver(solver),
		fastmin.WithEnergyGuard(cfg.Guard),
		fastmin.WithLogger(log),
		fastmin.WithObserver(rep.observe),
	}
	if cfg.Bounded {
		opts = append(opts, fastmin.WithMaxCycles(cfg.MaxCycles))
	}
	m, err := fastmin.NewMinimizer(p.cm, opts...)
	if err != nil {
		return err
	}

	log.Noticef("minimizing %v over %d labels with %s (%s)", p.cm.Shape(), p.cm.NumLabels(), cfg.Algorithm, cfg.Solver)
	start := time.Now()
	var labels *grid.Labels
	if cfg.Algorithm == AlgorithmSwap {
		labels, err = m.Swap(ctx, p.labels)
	} else {
		labels, err = m.Expand(ctx, p.labels)
	}
	if err != nil {
		return err
	}
	st := m.Stats()
	h, mi, s := logger.ParseTime(time.Since(start))
	log.Noticef("finished in %vh %vm %vs: %d cycles, %d moves, energy %g", h, mi, s, st.Cycles, st.Moves, st.Energy)

	_, regions := grid.Regions(labels)
	rep.render(report, regions)

	res := result{
		Shape:     labels.Shape(),
		Labels:    labels.Data(),
		Energy:    st.Energy,
		Cycles:    st.Cycles,
		Converged: st.Converged,
	}
	if cfg.Output == "" {
		return writeResult(out, res)
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return errors.Wrapf(err, "creating %s", cfg.Output)
	}
	if err := writeResult(f, res); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "closing %s", cfg.Output)
}
