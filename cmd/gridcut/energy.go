package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/gridcut/fastmin"
	"github.com/katalvlaran/gridcut/logger"
)

var energyCommand = cli.Command{
	Action:    energyAction,
	Name:      "energy",
	Usage:     "Print the energy of the labeling in a problem file (all zeros if absent).",
	ArgsUsage: "<problem.json>",
	Flags: []cli.Flag{
		&logger.LogLevelFlag,
	},
}

func energyAction(ctx *cli.Context) error {
	cfg, err := NewConfig(ctx)
	if err != nil {
		return err
	}

	return printEnergy(cfg, ctx.App.Writer)
}

func printEnergy(cfg *Config, out io.Writer) error {
	p, err := loadProblem(cfg.ProblemFile)
	if err != nil {
		return err
	}
	labels := p.labels
	if labels == nil {
		labels = p.cm.NewLabels()
	}
	e, err := fastmin.Energy(p.cm, labels)
	if err != nil {
		return err
	}
	logger.NewLogger(cfg.LogLevel, "gridcut").Debugf("energy of %v labeling: %g", labels.Shape(), e)

	_, err = fmt.Fprintf(out, "%g\n", e)

	return err
}
