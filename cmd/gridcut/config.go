package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/gridcut/logger"
)

// ErrInvalidArgs reports bad positional arguments or flag values.
var ErrInvalidArgs = errors.New("gridcut: invalid arguments")

// Config is the resolved configuration of one command invocation.
type Config struct {
	ProblemFile string
	Algorithm   string
	Solver      string
	MaxCycles   int
	Bounded     bool // MaxCycles was given
	Guard       bool
	Output      string
	LogLevel    string
}

// NewConfig reads flags and the single problem-file argument from ctx.
func NewConfig(ctx *cli.Context) (*Config, error) {
	if n := ctx.Args().Len(); n != 1 {
		return nil, errors.Wrapf(ErrInvalidArgs, "command requires 1 argument, got %d", n)
	}

	cfg := &Config{
		ProblemFile: ctx.Args().First(),
		Algorithm:   ctx.String(AlgorithmFlag.Name),
		Solver:      ctx.String(SolverFlag.Name),
		MaxCycles:   ctx.Int(MaxCyclesFlag.Name),
		Bounded:     ctx.IsSet(MaxCyclesFlag.Name),
		Guard:       !ctx.Bool(NoGuardFlag.Name),
		Output:      ctx.String(OutputFlag.Name),
		LogLevel:    ctx.String(logger.LogLevelFlag.Name),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = logger.DefaultLogLevel
	}

	return cfg, nil
}

// validateAlgorithm accepts expand and swap.
func (cfg *Config) validateAlgorithm() error {
	switch cfg.Algorithm {
	case AlgorithmExpand, AlgorithmSwap:
		return nil
	default:
		return errors.Wrapf(ErrInvalidArgs, "unknown algorithm %q", cfg.Algorithm)
	}
}

// loadEnv loads GRIDCUT_* variables from a dotenv file without overriding
// variables already set. A missing file is an error only if required.
func loadEnv(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil || (!required && os.IsNotExist(err)) {
		return nil
	}

	return errors.Wrapf(err, "loading env file %s", path)
}
