package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/gridcut/fastmin"
	"github.com/katalvlaran/gridcut/logger"
)

var checkCommand = cli.Command{
	Action:    checkAction,
	Name:      "check",
	Usage:     "Report whether the pairwise matrix suits expansion (metric) or swap (semi-metric).",
	ArgsUsage: "<problem.json>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
	},
}

func checkAction(ctx *cli.Context) error {
	cfg, err := NewConfig(ctx)
	if err != nil {
		return err
	}

	return printCheck(cfg, ctx.App.Writer)
}

// printCheck never fails on a bad V; it reports what the matrix is.
func printCheck(cfg *Config, out io.Writer) error {
	p, err := loadProblem(cfg.ProblemFile)
	if err != nil {
		return err
	}
	v := p.cm.PairwiseMatrix()

	var line string
	switch err := fastmin.CheckMetric(v); {
	case err == nil:
		line = "metric: expand and swap apply"
	case errors.Is(err, fastmin.ErrNotMetric):
		line = fmt.Sprintf("semi-metric: swap applies, expand is not exact (%v)", err)
	default:
		line = fmt.Sprintf("not a semi-metric: neither move is exact (%v)", err)
	}
	_, err = fmt.Fprintln(out, line)

	return err
}
