// Command gridcut minimizes labeling energies stored in JSON problem files
// with alpha-expansion or alpha-beta-swap moves.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:     "gridcut",
		HelpName: "gridcut",
		Usage:    "minimize grid labeling energies with graph cuts",
		Flags: []cli.Flag{
			&EnvFileFlag,
		},
		Before: func(ctx *cli.Context) error {
			return loadEnv(ctx.String(EnvFileFlag.Name), ctx.IsSet(EnvFileFlag.Name))
		},
		Commands: []*cli.Command{
			&minimizeCommand,
			&energyCommand,
			&checkCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
