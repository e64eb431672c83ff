// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/qcircuit/algorithms"
	"github.com/katalvlaran/qcircuit/circuit"
)

// newApp wires the command tree around one logger.
func newApp(logger *log.Logger) *cli.App {
	return &cli.App{
		Name:  "qcirc",
		Usage: "build and run small quantum circuits",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "debug, info, warn or error",
				EnvVars: []string{"QCIRC_LOG_LEVEL"},
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "seed for the measurement draw (random when unset)",
				EnvVars: []string{"QCIRC_SEED"},
			},
		},
		Before: func(ctx *cli.Context) error {
			level, err := log.ParseLevel(ctx.String("log-level"))
			if err != nil {
				return err
			}
			logger.SetLevel(level)

			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "paper",
				Usage: "print the truth table of the 6-qubit example circuit",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "method", Value: "auto", Usage: "auto, soh or sv"},
				},
				Action: func(ctx *cli.Context) error { return runPaper(ctx, logger) },
			},
			{
				Name:  "grover",
				Usage: "search 2^n values for a marked one",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "qubits", Aliases: []string{"n"}, Value: 3},
					&cli.IntFlag{Name: "marked", Aliases: []string{"x"}, Value: 5},
					&cli.IntFlag{Name: "iterations", Usage: "override ⌊π/4·√2^n⌋"},
					&cli.Float64Flag{Name: "max-cost", Usage: "largest cost estimate to simulate"},
				},
				Action: func(ctx *cli.Context) error { return runGrover(ctx, logger) },
			},
			{
				Name:  "shor",
				Usage: "factor a small integer",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "number", Aliases: []string{"N"}, Value: 15},
					&cli.IntFlag{Name: "attempts", Value: 20},
					&cli.IntFlag{Name: "max-qubits", Value: 10},
				},
				Action: func(ctx *cli.Context) error { return runShor(ctx, logger) },
			},
			{
				Name:   "gates",
				Usage:  "list the gate catalogue",
				Action: runGates,
			},
		},
	}
}

// rng returns a seeded source when --seed is set.
func rng(ctx *cli.Context) *rand.Rand {
	if ctx.IsSet("seed") {
		s := ctx.Uint64("seed")
		return rand.New(rand.NewPCG(s, s))
	}

	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func parseMethod(s string) (circuit.Method, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return circuit.MethodAuto, nil
	case "soh", "1", "sum-over-histories":
		return circuit.MethodSumOverHistories, nil
	case "sv", "2", "state-vector":
		return circuit.MethodStateVector, nil
	default:
		return circuit.MethodAuto, fmt.Errorf("method %q: %w", s, circuit.ErrUnknownMethod)
	}
}

func algorithmOptions(ctx *cli.Context, logger *log.Logger) []algorithms.Option {
	return []algorithms.Option{
		algorithms.WithRand(rng(ctx)),
		algorithms.WithLogger(logger.WithPrefix("algorithms")),
	}
}
