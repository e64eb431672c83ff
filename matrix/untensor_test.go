package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcircuit/matrix"
)

// TestUntensor_RoundTrip checks untensor(tensor(v1..vn)) == [v1..vn] for all
// classical inputs up to four qubits.
func TestUntensor_RoundTrip(t *testing.T) {
	for n := 1; n <= 4; n++ {
		for b := 0; b < 1<<n; b++ {
			bits := bitsOf(b, n)
			vs := make([]*matrix.Dense, n)
			for i, bit := range bits {
				v, err := matrix.Basis(bit)
				require.NoError(t, err)
				vs[i] = v
			}
			state, err := matrix.Tensor(vs...)
			require.NoError(t, err)

			got, err := matrix.Untensor(state)
			require.NoError(t, err)
			require.Len(t, got, n)
			for i := range vs {
				require.Truef(t, matrix.Equal(vs[i], got[i]), "n=%d b=%d qubit %d", n, b, i)
			}

			decoded, err := matrix.DecodeBits(state)
			require.NoError(t, err)
			require.Equal(t, bits, decoded)
		}
	}
}

func TestUntensor_GlobalPhase(t *testing.T) {
	v, err := matrix.Column(0, 0, -1i, 0)
	require.NoError(t, err)
	bits, err := matrix.DecodeBits(v)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, bits)
}

func TestUntensor_Errors(t *testing.T) {
	odd, err := matrix.Column(1, 0, 0)
	require.NoError(t, err)
	_, err = matrix.Untensor(odd)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	six, err := matrix.Column(1, 0, 0, 0, 0, 0)
	require.NoError(t, err)
	_, err = matrix.Untensor(six)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Untensor(matrix.Identity(2))
	require.ErrorIs(t, err, matrix.ErrNotVector)

	plus, err := matrix.Mul(matrix.Hadamard(), mustRows(t, [][]complex128{{1}, {0}}))
	require.NoError(t, err)
	_, err = matrix.Untensor(plus)
	require.ErrorIs(t, err, matrix.ErrNotBasisState)

	// two unit entries
	two, err := matrix.Column(1, 0, 0, 1)
	require.NoError(t, err)
	_, err = matrix.Untensor(two)
	require.ErrorIs(t, err, matrix.ErrNotBasisState)

	zero, err := matrix.Column(0, 0, 0, 0)
	require.NoError(t, err)
	_, err = matrix.Untensor(zero)
	require.ErrorIs(t, err, matrix.ErrNotBasisState)
}
