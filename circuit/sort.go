// SPDX-License-Identifier: MIT

package circuit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/qcircuit/dfs"
)

// gateGraph exposes the gate-dependency graph to package dfs: an edge A→B
// exists for every wire from an output of A to an input of B.
type gateGraph struct{ c *Circuit }

// Vertices returns the gates in current order so that an already sorted
// circuit keeps its order on a re-sort.
func (g gateGraph) Vertices() []int {
	vs := make([]int, len(g.c.order))
	for i, id := range g.c.order {
		vs[i] = int(id)
	}

	return vs
}

func (g gateGraph) Successors(v int) []int {
	var next []int
	for _, w := range g.c.nodes[v].out {
		if w == noWire {
			continue
		}
		if to := g.c.wires[w].To.Node; to != Boundary {
			next = append(next, int(to))
		}
	}

	return next
}

// Sort orders the gates so that every gate follows all gates feeding it.
// It fails with ErrIncomplete unless Check is true and with ErrCycle when
// gates feed each other in a loop; the error then names the gates on the
// loop. On failure the previous order is kept. Sort can be called again
// after the circuit is extended.
func (c *Circuit) Sort() error {
	if gap := c.firstGap(); gap != "" {
		return fmt.Errorf("Sort: %s unwired: %w", gap, ErrIncomplete)
	}

	order, err := dfs.TopologicalSort(gateGraph{c})
	if errors.Is(err, dfs.ErrCycleDetected) {
		return fmt.Errorf("Sort: %s: %w", c.describeCycle(), ErrCycle)
	}
	if err != nil {
		return fmt.Errorf("Sort: %w", err)
	}

	for i, v := range order {
		c.order[i] = NodeID(v)
	}
	c.sorted = true
	c.logger.Debug("sorted", "order", c.orderLabels())

	return nil
}

// describeCycle renders one gate loop as "CNOT_1 -> X_2 -> CNOT_1".
func (c *Circuit) describeCycle() string {
	loop, err := dfs.FindCycle(gateGraph{c})
	if err != nil || loop == nil {
		return "cycle"
	}
	names := make([]string, len(loop))
	for i, v := range loop {
		names[i] = c.label(NodeID(v))
	}

	return strings.Join(names, " -> ")
}

func (c *Circuit) orderLabels() []string {
	out := make([]string, len(c.order))
	for i, id := range c.order {
		out[i] = c.label(id)
	}

	return out
}

// StartQubit follows the wire feeding input port inPort of gate id backward
// until it reaches the boundary and returns that boundary input index.
// A gate's output port p continues the line of its input port p.
func (c *Circuit) StartQubit(id NodeID, inPort int) (int, error) {
	if err := c.checkPort(id, inPort); err != nil {
		return 0, fmt.Errorf("StartQubit: %w", err)
	}

	node, port := id, inPort
	for steps := 0; steps <= len(c.wires); steps++ {
		w := c.nodes[node].in[port]
		if w == noWire {
			return 0, fmt.Errorf("StartQubit: %s input %d unwired: %w", c.label(node), port, ErrIncomplete)
		}
		from := c.wires[w].From
		if from.Node == Boundary {
			return from.Port, nil
		}
		node, port = from.Node, from.Port
	}

	return 0, fmt.Errorf("StartQubit(%d, %d): %w", id, inPort, ErrCycle)
}

// EndQubit follows the wire leaving output port outPort of gate id forward
// until it reaches the boundary and returns that boundary output index.
func (c *Circuit) EndQubit(id NodeID, outPort int) (int, error) {
	if err := c.checkPort(id, outPort); err != nil {
		return 0, fmt.Errorf("EndQubit: %w", err)
	}

	node, port := id, outPort
	for steps := 0; steps <= len(c.wires); steps++ {
		w := c.nodes[node].out[port]
		if w == noWire {
			return 0, fmt.Errorf("EndQubit: %s output %d unwired: %w", c.label(node), port, ErrIncomplete)
		}
		to := c.wires[w].To
		if to.Node == Boundary {
			return to.Port, nil
		}
		node, port = to.Node, to.Port
	}

	return 0, fmt.Errorf("EndQubit(%d, %d): %w", id, outPort, ErrCycle)
}

// StartQubits returns, for each boundary output p, the boundary input whose
// line arrives there. The result is a permutation of 0..Size()-1.
func (c *Circuit) StartQubits() ([]int, error) {
	perm := make([]int, c.size)
	for p, w := range c.output {
		if w == noWire {
			return nil, fmt.Errorf("StartQubits: boundary output %d unwired: %w", p, ErrIncomplete)
		}
		from := c.wires[w].From
		if from.Node == Boundary {
			perm[p] = from.Port
			continue
		}
		q, err := c.StartQubit(from.Node, from.Port)
		if err != nil {
			return nil, err
		}
		perm[p] = q
	}

	return perm, nil
}

func (c *Circuit) checkPort(id NodeID, port int) error {
	if !c.isGate(id) {
		return fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	if n := c.nodes[id].g.Len(); port < 0 || port >= n {
		return fmt.Errorf("%s port %d of %d: %w", c.label(id), port, n, ErrPortOutOfRange)
	}

	return nil
}
