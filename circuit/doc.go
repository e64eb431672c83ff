// SPDX-License-Identifier: MIT

// Package circuit builds and executes quantum circuits over a fixed number
// of qubit lines.
//
// What:
//
//   - Circuit: an arena of gates and wires. Gates are referenced by NodeID,
//     wires by WireID; the circuit's own ports are addressed through the
//     Boundary node (boundary input p is a wire source, boundary output p a
//     wire target).
//   - Wiring: Add, AddGate, AddWire and AddWires. Every port holds at most
//     one wire and a wire is never rewired.
//   - Validation: Check reports completeness; Sort orders the gates
//     topologically (three-colour DFS) and rejects loops.
//   - Tracing: StartQubit, EndQubit and StartQubits follow a line through
//     the gates back to (or forward to) the boundary. A gate's output port p
//     carries on the line of its input port p.
//   - Execution: Run draws one measured output bit-vector for a classical
//     input using one of two strategies.
//
// Strategies:
//
//   - MethodSumOverHistories sums, over every assignment of the internal
//     wires, the product of the gate matrix entries M[out][in]. It yields the
//     exact outcome distribution, superpositions included.
//     Cost O(gates·2^(n+internal)).
//   - MethodStateVector evolves the 2^n state vector with M⊗I after routing
//     the gate's lines to the leading positions by transpositions. The final
//     state is decoded into definite bits; a superposed final state is
//     reported as ErrNotBasisState rather than sampled.
//     Cost O(gates·2^(2n)).
//   - MethodAuto picks the cheaper estimate; ties go to the enumerative
//     strategy.
//
// Bit order is big-endian everywhere: qubit 0 and port 0 are the most
// significant bit of an index.
//
// Errors:
//
//   - ErrBadSize, ErrNilGate, ErrUnknownNode   construction
//   - ErrPortOutOfRange, ErrPortInUse, ErrPortCountMismatch   wiring
//   - ErrIncomplete, ErrCycle   Sort
//   - ErrInputLength, ErrInputNotBinary, ErrUnknownMethod, ErrNotBasisState   Run
//
// Logging goes through charmbracelet/log at Debug level; set WithLogger to
// route or silence it.
package circuit
