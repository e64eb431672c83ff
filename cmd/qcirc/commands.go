// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/qcircuit/algorithms"
	"github.com/katalvlaran/qcircuit/circuit"
	"github.com/katalvlaran/qcircuit/gate"
	"github.com/katalvlaran/qcircuit/matrix"
)

// runPaper prints (b0, b1) against the measured 6-bit output for all four
// inputs of the example circuit.
func runPaper(ctx *cli.Context, logger *log.Logger) error {
	m, err := parseMethod(ctx.String("method"))
	if err != nil {
		return err
	}
	c, err := algorithms.NewPaperCircuit(
		circuit.WithRand(rng(ctx)),
		circuit.WithLogger(logger.WithPrefix("circuit")),
	)
	if err != nil {
		return err
	}

	t := newTable(ctx.App.Writer, "b0", "b1", "output", "method")
	for i := 0; i < 4; i++ {
		in := []int{i >> 1, i & 1, 0, 0, 0, 0}
		out, err := c.Run(in, m)
		if err != nil {
			return err
		}
		used, err := c.Choose(m)
		if err != nil {
			return err
		}
		t.Append([]string{strconv.Itoa(in[0]), strconv.Itoa(in[1]), bitString(out), used.String()})
	}
	fmt.Fprintln(ctx.App.Writer, titleStyle.Render("paper circuit"))
	t.Render()

	return nil
}

func runGrover(ctx *cli.Context, logger *log.Logger) error {
	n, marked := ctx.Int("qubits"), ctx.Int("marked")
	opts := algorithmOptions(ctx, logger)
	if ctx.IsSet("iterations") {
		opts = append(opts, algorithms.WithIterations(ctx.Int("iterations")))
	}
	if ctx.IsSet("max-cost") {
		opts = append(opts, algorithms.WithMaxCost(ctx.Float64("max-cost")))
	}

	res, err := algorithms.Grover(n, marked, opts...)
	if err != nil {
		return err
	}

	verdict := okStyle.Render("found")
	if res.Value != marked {
		verdict = missStyle.Render("missed")
	}
	fmt.Fprintln(ctx.App.Writer, titleStyle.Render("grover"))
	fmt.Fprintf(ctx.App.Writer, "%s marked=%d measured=%d bits=%s iterations=%d method=%v\n",
		verdict, marked, res.Value, bitString(res.Bits), res.Iterations, res.Method)

	return nil
}

func runShor(ctx *cli.Context, logger *log.Logger) error {
	n := ctx.Int("number")
	opts := append(algorithmOptions(ctx, logger),
		algorithms.WithMaxAttempts(ctx.Int("attempts")),
		algorithms.WithMaxQubits(ctx.Int("max-qubits")),
	)

	factors, err := algorithms.Factor(n, opts...)
	if err != nil {
		return err
	}

	parts := make([]string, len(factors))
	for i, f := range factors {
		parts[i] = strconv.Itoa(f)
	}
	fmt.Fprintln(ctx.App.Writer, titleStyle.Render("shor"))
	fmt.Fprintf(ctx.App.Writer, "%d = %s\n", n, okStyle.Render(joinFactors(parts)))

	return nil
}

// catalogue lists one representative of every built-in gate kind.
var catalogue = []gate.Spec{
	{Kind: gate.KindH, Width: 1},
	{Kind: gate.KindX, Width: 1},
	{Kind: gate.KindY, Width: 1},
	{Kind: gate.KindZ, Width: 1},
	{Kind: gate.KindSqrtNot, Width: 1},
	{Kind: gate.KindPhaseShift, Width: 1, Theta: 0.5},
	{Kind: gate.KindCNOT},
	{Kind: gate.KindToffoli},
	{Kind: gate.KindQFT, Width: 2},
}

func runGates(ctx *cli.Context) error {
	t := newTable(ctx.App.Writer, "kind", "gate", "qubits", "dim", "unitary")
	for _, spec := range catalogue {
		g, err := gate.FromSpec(spec)
		if err != nil {
			return err
		}
		t.Append([]string{
			spec.Kind.String(),
			g.String(),
			strconv.Itoa(g.Len()),
			strconv.Itoa(g.Dim()),
			strconv.FormatBool(matrix.IsUnitary(g.Matrix())),
		})
	}
	fmt.Fprintln(ctx.App.Writer, titleStyle.Render("gates"))
	t.Render()

	return nil
}
