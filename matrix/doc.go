// SPDX-License-Identifier: MIT

// Package matrix is the dense complex linear-algebra kernel behind the
// circuit simulator.
//
// What:
//
//   - Dense: row-major rectangular matrix of complex128 values.
//   - Products: Mul (standard product), Kron (Kronecker product) and
//     Tensor (left fold of Kron over a list, no reordering).
//   - ConjugateTranspose, Round, Equal and IsUnitary. Unitarity is decided
//     on round(M·M†, Places) == I, never on exact floating equality.
//   - Permutation(perm): the 2^m × 2^m 0/1 matrix that reorders qubits,
//     and Transposition(i, j, n) for a single pair swap.
//   - Basis/Column/Identity/Zero constructors and the standard gate
//     generators (Pauli X/Y/Z, Hadamard, √NOT, phase shift, CNOT, the
//     3-qubit "T" permutation and the QFT).
//   - Untensor: split a classical 2^n basis vector into n two-dimensional
//     basis vectors.
//
// Bit order:
//
//	Index b of a 2^n vector is read big-endian: qubit 0 is the most
//	significant bit. Every function in the package follows this order.
//
// Complexity:
//
//   - Mul:   O(r·k·c)
//   - Kron:  O(r1·c1·r2·c2)
//   - IsUnitary: O(n³)
//   - Permutation: O(m·2^m) to place the ones, O(4^m) to allocate
//
// Errors:
//
//   - ErrBadShape, ErrRaggedRows, ErrOutOfRange  construction and indexing
//   - ErrDimensionMismatch                       incompatible operands
//   - ErrBadPermutation                          invalid qubit ordering
//   - ErrNotVector, ErrNotBasisState             Untensor preconditions
package matrix
