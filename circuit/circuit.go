// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/qcircuit/gate"
	"github.com/katalvlaran/qcircuit/internal/ownership"
)

// NodeID is the handle of a component inside one Circuit.
// Gates get consecutive non-negative IDs in insertion order, so a NodeID is
// also the gate's insertion ordinal; Boundary names the circuit itself.
type NodeID int

// Boundary is the NodeID of the circuit's own input/output ports.
// As a wire source it means boundary input port p; as a wire target it
// means boundary output port p.
const Boundary NodeID = -1

// WireID is the handle of a wire inside one Circuit.
type WireID int

// noWire marks an empty port slot.
const noWire WireID = -1

// Endpoint is one end of a wire: a component and one of its port indices.
type Endpoint struct {
	Node NodeID
	Port int
}

// Wire is a directed connection from an output port to an input port.
// A wire is created once and never rewired.
type Wire struct {
	ID   WireID
	From Endpoint
	To   Endpoint
}

// Internal reports whether neither end touches the circuit boundary.
func (w Wire) Internal() bool {
	return w.From.Node != Boundary && w.To.Node != Boundary
}

// node is the arena slot of an attached gate.
type node struct {
	g   *gate.Gate
	seq int      // per-name sequence, 1-based
	in  []WireID // in[p]: wire feeding input port p
	out []WireID // out[p]: wire leaving output port p
}

// Circuit is a fixed-size graph of gates and wires over n qubit lines.
//
// Gates and wires live in arenas owned by the circuit and are referenced by
// NodeID and WireID. The gate order starts as insertion order; Sort
// replaces it with a topological order.
//
// A Circuit is not safe for concurrent use.
type Circuit struct {
	id     uuid.UUID
	size   int
	input  []WireID // input[p]: wire leaving boundary input p
	output []WireID // output[p]: wire entering boundary output p
	nodes  []node   // indexed by NodeID
	order  []NodeID // gate order; topological after Sort
	wires  []Wire   // indexed by WireID
	names  map[string]int
	sorted bool

	logger *log.Logger
	rng    *rand.Rand
}

// New creates an empty circuit over size qubit lines.
func New(size int, opts ...Option) (*Circuit, error) {
	if size < 1 {
		return nil, fmt.Errorf("New(%d): %w", size, ErrBadSize)
	}
	c := &Circuit{
		id:     uuid.New(),
		size:   size,
		input:  emptySlots(size),
		output: emptySlots(size),
		names:  make(map[string]int),
		logger: log.Default().WithPrefix("circuit"),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func emptySlots(n int) []WireID {
	s := make([]WireID, n)
	for i := range s {
		s[i] = noWire
	}

	return s
}

// ID returns the circuit identity stamped on every attached gate.
func (c *Circuit) ID() uuid.UUID { return c.id }

// Size returns the number of qubit lines.
func (c *Circuit) Size() int { return c.size }

// Add attaches g to the circuit and returns its handle.
// A gate already attached to any circuit is rejected with
// gate.ErrAlreadyAttached.
func (c *Circuit) Add(g *gate.Gate) (NodeID, error) {
	if g == nil {
		return Boundary, fmt.Errorf("Add: %w", ErrNilGate)
	}
	if err := ownership.Claim(g, c.id); err != nil {
		return Boundary, fmt.Errorf("Add: %w", err)
	}

	c.names[g.Name()]++
	id := NodeID(len(c.nodes))
	c.nodes = append(c.nodes, node{
		g:   g,
		seq: c.names[g.Name()],
		in:  emptySlots(g.Len()),
		out: emptySlots(g.Len()),
	})
	c.order = append(c.order, id)
	c.sorted = false
	c.logger.Debug("gate added", "node", id, "gate", c.label(id), "arity", g.Len())

	return id, nil
}

// AddGate builds a catalogue gate from spec and attaches it.
func (c *Circuit) AddGate(spec gate.Spec) (NodeID, error) {
	g, err := gate.FromSpec(spec)
	if err != nil {
		return Boundary, fmt.Errorf("AddGate: %w", err)
	}

	return c.Add(g)
}

// Gate returns the gate behind id.
func (c *Circuit) Gate(id NodeID) (*gate.Gate, error) {
	if !c.isGate(id) {
		return nil, fmt.Errorf("Gate(%d): %w", id, ErrUnknownNode)
	}

	return c.nodes[id].g, nil
}

// Gates returns the gate handles in the current order.
func (c *Circuit) Gates() []NodeID {
	return append([]NodeID(nil), c.order...)
}

// Label returns the display label "name_seq" of a gate, where seq counts
// gates of the same name in insertion order starting at 1.
func (c *Circuit) Label(id NodeID) (string, error) {
	if !c.isGate(id) {
		return "", fmt.Errorf("Label(%d): %w", id, ErrUnknownNode)
	}

	return c.label(id), nil
}

func (c *Circuit) label(id NodeID) string {
	n := c.nodes[id]

	return fmt.Sprintf("%s_%d", n.g.Name(), n.seq)
}

func (c *Circuit) isGate(id NodeID) bool {
	return id >= 0 && int(id) < len(c.nodes)
}

// arity returns the port count of a component, the circuit size for Boundary.
func (c *Circuit) arity(id NodeID) (int, error) {
	if id == Boundary {
		return c.size, nil
	}
	if !c.isGate(id) {
		return 0, ErrUnknownNode
	}

	return c.nodes[id].g.Len(), nil
}

// outSlots returns the slots holding wires that leave id.
func (c *Circuit) outSlots(id NodeID) []WireID {
	if id == Boundary {
		return c.input
	}

	return c.nodes[id].out
}

// inSlots returns the slots holding wires that enter id.
func (c *Circuit) inSlots(id NodeID) []WireID {
	if id == Boundary {
		return c.output
	}

	return c.nodes[id].in
}

// checkEnd validates one end of a prospective wire.
func (c *Circuit) checkEnd(id NodeID, port int, slots func(NodeID) []WireID) error {
	n, err := c.arity(id)
	if err != nil {
		return fmt.Errorf("node %d: %w", id, err)
	}
	if port < 0 || port >= n {
		return fmt.Errorf("node %d port %d of %d: %w", id, port, n, ErrPortOutOfRange)
	}
	if w := slots(id)[port]; w != noWire {
		return fmt.Errorf("node %d port %d holds wire %d: %w", id, port, w, ErrPortInUse)
	}

	return nil
}

// AddWire connects output port fromPort of from to input port toPort of to.
// Either side may be Boundary.
func (c *Circuit) AddWire(from NodeID, fromPort int, to NodeID, toPort int) (WireID, error) {
	if err := c.checkEnd(from, fromPort, c.outSlots); err != nil {
		return noWire, fmt.Errorf("AddWire from: %w", err)
	}
	if err := c.checkEnd(to, toPort, c.inSlots); err != nil {
		return noWire, fmt.Errorf("AddWire to: %w", err)
	}

	return c.connect(from, fromPort, to, toPort), nil
}

func (c *Circuit) connect(from NodeID, fromPort int, to NodeID, toPort int) WireID {
	id := WireID(len(c.wires))
	c.wires = append(c.wires, Wire{
		ID:   id,
		From: Endpoint{Node: from, Port: fromPort},
		To:   Endpoint{Node: to, Port: toPort},
	})
	c.outSlots(from)[fromPort] = id
	c.inSlots(to)[toPort] = id
	c.sorted = false
	c.logger.Debug("wire added", "wire", id, "from", from, "fromPort", fromPort, "to", to, "toPort", toPort)

	return id
}

// AddWires connects fromPorts[i] of from to toPorts[i] of to for every i.
// An empty or nil port list stands for every port of that component.
// The batch is validated as a whole; on error no wire is added.
func (c *Circuit) AddWires(from NodeID, fromPorts []int, to NodeID, toPorts []int) ([]WireID, error) {
	var err error
	if fromPorts, err = c.allPorts(from, fromPorts); err != nil {
		return nil, fmt.Errorf("AddWires from: %w", err)
	}
	if toPorts, err = c.allPorts(to, toPorts); err != nil {
		return nil, fmt.Errorf("AddWires to: %w", err)
	}
	if len(fromPorts) != len(toPorts) {
		return nil, fmt.Errorf("AddWires: %d vs %d: %w", len(fromPorts), len(toPorts), ErrPortCountMismatch)
	}

	usedFrom := make(map[int]bool, len(fromPorts))
	usedTo := make(map[int]bool, len(toPorts))
	for i := range fromPorts {
		if err = c.checkEnd(from, fromPorts[i], c.outSlots); err != nil {
			return nil, fmt.Errorf("AddWires from: %w", err)
		}
		if err = c.checkEnd(to, toPorts[i], c.inSlots); err != nil {
			return nil, fmt.Errorf("AddWires to: %w", err)
		}
		if usedFrom[fromPorts[i]] || usedTo[toPorts[i]] {
			return nil, fmt.Errorf("AddWires: port listed twice: %w", ErrPortInUse)
		}
		usedFrom[fromPorts[i]], usedTo[toPorts[i]] = true, true
	}

	ids := make([]WireID, len(fromPorts))
	for i := range fromPorts {
		ids[i] = c.connect(from, fromPorts[i], to, toPorts[i])
	}

	return ids, nil
}

// allPorts expands an empty port list to 0..arity-1.
func (c *Circuit) allPorts(id NodeID, ports []int) ([]int, error) {
	n, err := c.arity(id)
	if err != nil {
		return nil, fmt.Errorf("node %d: %w", id, err)
	}
	if len(ports) > 0 {
		return ports, nil
	}
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}

	return all, nil
}

// Wires returns every wire in creation order.
func (c *Circuit) Wires() []Wire {
	return append([]Wire(nil), c.wires...)
}

// InternalWires returns the wires joining two gates.
func (c *Circuit) InternalWires() []Wire {
	var out []Wire
	for _, w := range c.wires {
		if w.Internal() {
			out = append(out, w)
		}
	}

	return out
}

// Check reports whether every boundary port and every gate port is wired.
func (c *Circuit) Check() bool {
	return c.firstGap() == ""
}

// firstGap describes the first unwired port, or returns "".
func (c *Circuit) firstGap() string {
	for p, w := range c.input {
		if w == noWire {
			return fmt.Sprintf("boundary input %d", p)
		}
	}
	for p, w := range c.output {
		if w == noWire {
			return fmt.Sprintf("boundary output %d", p)
		}
	}
	for id, n := range c.nodes {
		for p, w := range n.in {
			if w == noWire {
				return fmt.Sprintf("%s input %d", c.label(NodeID(id)), p)
			}
		}
		for p, w := range n.out {
			if w == noWire {
				return fmt.Sprintf("%s output %d", c.label(NodeID(id)), p)
			}
		}
	}

	return ""
}
