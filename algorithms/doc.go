// SPDX-License-Identifier: MIT

// Package algorithms implements client programs built only on the public
// circuit and gate API.
//
// It provides:
//
//   - NewPaperCircuit
//     – the 7-gate, 6-qubit reversible example circuit
//
//   - Search
//     – Grover: amplitude amplification over 2^n values with a phase oracle
//
//   - Factoring
//     – Factor: Shor's period finding for the quantum step, with classical
//     shortcuts for even numbers, prime powers and lucky gcds
//
// Every circuit built here runs through circuit.Run. When the automatic
// strategy choice lands on the state-vector method and the final state is a
// superposition, the run is repeated with the sum-over-histories method.
package algorithms
