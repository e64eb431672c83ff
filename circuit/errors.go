// SPDX-License-Identifier: MIT

package circuit

import "errors"

// Sentinel errors returned by circuit construction and execution.
// Callers match them with errors.Is; the returned errors carry the
// operation and the offending node or port in their message.
var (
	// ErrBadSize is returned by New for a qubit count below one.
	ErrBadSize = errors.New("circuit: size must be at least 1")

	// ErrNilGate is returned by Add for a nil gate.
	ErrNilGate = errors.New("circuit: gate is nil")

	// ErrUnknownNode is returned when a NodeID names neither the boundary
	// nor a gate of this circuit.
	ErrUnknownNode = errors.New("circuit: node is not part of this circuit")

	// ErrPortOutOfRange is returned when a port index exceeds the arity of
	// its component.
	ErrPortOutOfRange = errors.New("circuit: port index out of range")

	// ErrPortInUse is returned when a port slot already holds a wire.
	ErrPortInUse = errors.New("circuit: port already wired")

	// ErrPortCountMismatch is returned by AddWires when the two resolved
	// port lists differ in length.
	ErrPortCountMismatch = errors.New("circuit: port lists differ in length")

	// ErrIncomplete is returned when a boundary or gate port is left unwired.
	ErrIncomplete = errors.New("circuit: circuit is incomplete")

	// ErrCycle is returned by Sort when gates feed each other in a loop.
	ErrCycle = errors.New("circuit: gate graph contains a cycle")

	// ErrInputLength is returned when the input bit-vector length differs
	// from the circuit size.
	ErrInputLength = errors.New("circuit: input length does not match circuit size")

	// ErrInputNotBinary is returned when an input entry is neither 0 nor 1.
	ErrInputNotBinary = errors.New("circuit: input entries must be 0 or 1")

	// ErrUnknownMethod is returned by Run for an unsupported Method.
	ErrUnknownMethod = errors.New("circuit: unknown execution method")

	// ErrNotBasisState is returned by the state-vector method when the final
	// state is a superposition and cannot be decoded into definite bits.
	ErrNotBasisState = errors.New("circuit: final state is not a classical basis state")
)
