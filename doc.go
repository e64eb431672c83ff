// SPDX-License-Identifier: MIT

// Package qcircuit is a small quantum-circuit simulator: build a circuit
// from gates and wires, then run it on classical input bits and read back
// one measured output.
//
// 🚀 What is inside?
//
//	• matrix/       dense complex matrices, Kronecker products, qubit
//	                permutations and the standard gate generators
//	• gate/         validated unitary gates and the built-in catalogue
//	                (H, X, Y, Z, √NOT, phase shift, CNOT, T, QFT)
//	• dfs/          depth-first topological sort and cycle search
//	• circuit/      gates wired into a graph, line tracing and two
//	                execution strategies (sum over histories, state vector)
//	• algorithms/   Grover search, Shor factoring and the 6-qubit example
//	• cmd/qcirc     command-line front end
//
// ✨ Execution strategies
//
//	Sum over histories enumerates every output and every assignment of the
//	internal wires: O(gates·2^(n+internal)). It handles superposed results.
//
//	State vector evolves the 2^n amplitudes gate by gate: O(gates·2^(2n)).
//	Its final state must be a single basis state.
//
//	MethodAuto picks the cheaper of the two; ties go to sum over histories.
//
// Quick ASCII example (Bell pair):
//
//	q0 ──H──●──
//	        │
//	q1 ─────⊕──
//
// gives 00 and 11 with probability ½ each.
//
//	go get github.com/katalvlaran/qcircuit
package qcircuit
