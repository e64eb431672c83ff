// SPDX-License-Identifier: MIT

package algorithms

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qcircuit/circuit"
)

// measure runs c once with the cheaper strategy and retries with
// sum-over-histories when the state-vector result cannot be decoded.
// A strategy whose cost estimate exceeds o.maxCost is not started; the
// error then wraps ErrTooLarge and, for a refused retry, the
// circuit.ErrNotBasisState that caused it.
func measure(c *circuit.Circuit, in []int, o options) ([]int, circuit.Method, error) {
	m, err := c.Choose(circuit.MethodAuto)
	if err != nil {
		return nil, m, err
	}
	if err = withinBudget(c, m, o.maxCost); err != nil {
		return nil, m, err
	}
	out, err := c.Run(in, m)
	if errors.Is(err, circuit.ErrNotBasisState) && m != circuit.MethodSumOverHistories {
		if over := withinBudget(c, circuit.MethodSumOverHistories, o.maxCost); over != nil {
			return nil, m, fmt.Errorf("%w: %w", over, err)
		}
		o.logger.Debug("superposed final state, falling back", "from", m, "to", circuit.MethodSumOverHistories)
		m = circuit.MethodSumOverHistories
		out, err = c.Run(in, m)
	}

	return out, m, err
}

// withinBudget fails with ErrTooLarge when running c with m is estimated to
// cost more than limit.
func withinBudget(c *circuit.Circuit, m circuit.Method, limit float64) error {
	soh, sv := c.Costs()
	cost := soh
	if m == circuit.MethodStateVector {
		cost = sv
	}
	if cost > limit {
		return fmt.Errorf("%v costs %.3g, limit %.3g: %w", m, cost, limit, ErrTooLarge)
	}

	return nil
}

// lines returns [from, to).
func lines(from, to int) []int {
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}

	return out
}

// value packs big-endian bits into an integer.
func value(bits []int) int {
	v := 0
	for _, b := range bits {
		v = v<<1 | b
	}

	return v
}
