// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// bitAt returns bit i (0 = most significant) of an m-bit index.
func bitAt(index, i, m int) int {
	return (index >> (m - 1 - i)) & 1
}

// Permutation returns the 2^m × 2^m 0/1 matrix P for the qubit ordering perm
// (len(perm) == m). P maps basis vector e_b to e_c where bit i of c is bit
// perm[i] of b, so applying P to a state moves qubit perm[i] to position i.
//
// It is built by enumerating all 2^m bit-strings and placing a single 1 in
// each row/column pair.
//
// Errors:
//   - ErrBadPermutation if perm is empty or not a permutation of 0..m-1.
func Permutation(perm []int) (*Dense, error) {
	m := len(perm)
	if m == 0 {
		return nil, matrixErrorf(opPerm, ErrBadPermutation)
	}
	seen := make([]bool, m)
	for _, p := range perm {
		if p < 0 || p >= m || seen[p] {
			return nil, matrixErrorf(opPerm, fmt.Errorf("%v: %w", perm, ErrBadPermutation))
		}
		seen[p] = true
	}

	dim := 1 << m
	res := newDense(dim, dim)
	var b, c, i int
	for b = 0; b < dim; b++ {
		c = 0
		for i = 0; i < m; i++ {
			c = c<<1 | bitAt(b, perm[i], m)
		}
		res.data[c*dim+b] = 1
	}

	return res, nil
}

// Transposition returns the 2^n permutation matrix that swaps qubit
// positions i and j and leaves the rest in place. It is its own inverse.
func Transposition(i, j, n int) (*Dense, error) {
	if n < 1 || i < 0 || j < 0 || i >= n || j >= n {
		return nil, matrixErrorf(opTransp, fmt.Errorf("(%d,%d) of %d: %w", i, j, n, ErrOutOfRange))
	}
	perm := make([]int, n)
	for k := range perm {
		perm[k] = k
	}
	perm[i], perm[j] = perm[j], perm[i]

	return Permutation(perm)
}
