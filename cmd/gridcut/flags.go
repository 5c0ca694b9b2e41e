package main

import (
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/gridcut/flow"
)

const (
	AlgorithmExpand = "expand"
	AlgorithmSwap   = "swap"
)

var (
	AlgorithmFlag = cli.StringFlag{
		Name:    "algorithm",
		Aliases: []string{"a"},
		Usage:   "move family: expand (metric V) or swap (semi-metric V)",
		EnvVars: []string{"GRIDCUT_ALGORITHM"},
		Value:   AlgorithmExpand,
	}
	MaxCyclesFlag = cli.IntFlag{
		Name:    "max-cycles",
		Usage:   "stop after this many cycles, 0 or less performs no moves (default: until convergence)",
		EnvVars: []string{"GRIDCUT_MAX_CYCLES"},
	}
	SolverFlag = cli.StringFlag{
		Name:    "solver",
		Usage:   "max-flow solver: dinic, edmonds-karp or push-relabel",
		EnvVars: []string{"GRIDCUT_SOLVER"},
		Value:   flow.SolverDinic,
	}
	NoGuardFlag = cli.BoolFlag{
		Name:    "no-guard",
		Usage:   "apply every cut even when the energy does not drop",
		EnvVars: []string{"GRIDCUT_NO_GUARD"},
	}
	OutputFlag = cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the result to this file instead of stdout",
		EnvVars: []string{"GRIDCUT_OUTPUT"},
	}
	EnvFileFlag = cli.StringFlag{
		Name:  "env-file",
		Usage: "dotenv file with GRIDCUT_* settings, ignored if the default is missing",
		Value: ".env",
	}
)
