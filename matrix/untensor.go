// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// unitScale is 10^Places, the scale used to round moduli before comparing.
var unitScale = math.Pow(10, Places)

// isOne reports whether |v| rounds to 1; a global phase (-1, i, ...) is accepted.
func isOne(v complex128) bool { return roundTo(cmplx.Abs(v), unitScale) == 1 }

// isNought reports whether |v| rounds to 0.
func isNought(v complex128) bool { return roundTo(cmplx.Abs(v), unitScale) == 0 }

// Untensor splits a 2^n column vector that represents a classical product
// basis state into its n two-dimensional basis vectors, in qubit order.
//
// The vector is halved level by level: at each level the pair
// (v[2i], v[2i+1]) holding the unit entry is recorded and the pair is
// replaced by a single 1 (or 0) in the next, half-length level.
//
// Errors:
//   - ErrNotVector if v has more than one column.
//   - ErrDimensionMismatch if a level has odd length (length not a power of two).
//   - ErrNotBasisState if v is not an exact classical basis vector.
func Untensor(v *Dense) ([]*Dense, error) {
	bits, err := DecodeBits(v)
	if err != nil {
		return nil, err
	}
	out := make([]*Dense, len(bits))
	for i, b := range bits {
		if out[i], err = Basis(b); err != nil {
			return nil, matrixErrorf(opUntensor, err)
		}
	}

	return out, nil
}

// DecodeBits is Untensor returning the classical bit of each qubit
// instead of its basis vector.
func DecodeBits(v *Dense) ([]int, error) {
	if v == nil {
		return nil, matrixErrorf(opUntensor, ErrNilMatrix)
	}
	if !v.IsVector() {
		return nil, matrixErrorf(opUntensor, ErrNotVector)
	}
	if v.r%2 != 0 {
		return nil, matrixErrorf(opUntensor, fmt.Errorf("length %d: %w", v.r, ErrDimensionMismatch))
	}

	level := append([]complex128(nil), v.data...)
	var bits []int // collected last qubit first
	for len(level) > 1 {
		if len(level)%2 != 0 {
			return nil, matrixErrorf(opUntensor, fmt.Errorf("length %d: %w", v.r, ErrDimensionMismatch))
		}
		next := make([]complex128, len(level)/2)
		bit, hits := 0, 0
		for i := range next {
			lo, hi := level[2*i], level[2*i+1]
			switch {
			case isNought(lo) && isNought(hi):
				continue
			case isOne(lo) && isNought(hi):
				bit = 0
			case isNought(lo) && isOne(hi):
				bit = 1
			default:
				return nil, matrixErrorf(opUntensor, ErrNotBasisState)
			}
			hits++
			next[i] = 1
		}
		if hits != 1 {
			return nil, matrixErrorf(opUntensor, ErrNotBasisState)
		}
		bits = append(bits, bit)
		level = next
	}

	// reverse into qubit order
	for i, j := 0, len(bits)-1; i < j; i, j = i+1, j-1 {
		bits[i], bits[j] = bits[j], bits[i]
	}

	return bits, nil
}
