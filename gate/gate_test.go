package gate_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcircuit/gate"
	"github.com/katalvlaran/qcircuit/internal/ownership"
	"github.com/katalvlaran/qcircuit/matrix"
)

func TestCatalogue_ArityAndUnitarity(t *testing.T) {
	cases := []struct {
		spec  gate.Spec
		arity int
		name  string
	}{
		{gate.Spec{Kind: gate.KindH, Width: 1}, 1, "H"},
		{gate.Spec{Kind: gate.KindH, Width: 3}, 3, "H"},
		{gate.Spec{Kind: gate.KindX, Width: 2}, 2, "X"},
		{gate.Spec{Kind: gate.KindY, Width: 1}, 1, "Y"},
		{gate.Spec{Kind: gate.KindZ, Width: 2}, 2, "Z"},
		{gate.Spec{Kind: gate.KindSqrtNot, Width: 1}, 1, "SNOT"},
		{gate.Spec{Kind: gate.KindPhaseShift, Width: 2, Theta: math.Pi / 3}, 2, "R"},
		{gate.Spec{Kind: gate.KindCNOT}, 2, "CNOT"},
		{gate.Spec{Kind: gate.KindCNOT, Width: 2}, 2, "CNOT"},
		{gate.Spec{Kind: gate.KindToffoli}, 3, "T"},
		{gate.Spec{Kind: gate.KindQFT, Width: 3}, 3, "QFT"},
		{gate.Spec{Kind: gate.KindX, Width: 1, Name: "flip"}, 1, "flip"},
	}
	for _, tc := range cases {
		g, err := gate.FromSpec(tc.spec)
		require.NoError(t, err, "%+v", tc.spec)
		assert.Equal(t, tc.arity, g.Len())
		assert.Equal(t, 1<<tc.arity, g.Dim())
		assert.Equal(t, tc.name, g.Name())
		assert.Equal(t, tc.spec.Kind, g.Kind())
		assert.True(t, matrix.IsUnitary(g.Matrix()))
	}
}

func TestCatalogue_BadWidth(t *testing.T) {
	for _, spec := range []gate.Spec{
		{Kind: gate.KindH, Width: 0},
		{Kind: gate.KindPhaseShift, Width: -1},
		{Kind: gate.KindCNOT, Width: 3},
		{Kind: gate.KindToffoli, Width: 2},
		{Kind: gate.KindQFT, Width: 0},
	} {
		_, err := gate.FromSpec(spec)
		require.ErrorIs(t, err, gate.ErrBadWidth, "%+v", spec)
	}

	_, err := gate.FromSpec(gate.Spec{Kind: gate.Kind(42)})
	require.ErrorIs(t, err, gate.ErrUnknownKind)
	assert.Equal(t, "Kind(42)", gate.Kind(42).String())
}

func TestNew_Validation(t *testing.T) {
	nonSquare, err := matrix.NewFromRows([][]complex128{{1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	_, err = gate.New(nonSquare, "bad")
	require.ErrorIs(t, err, gate.ErrNonSquare)

	three := matrix.Identity(3)
	_, err = gate.New(three, "bad")
	require.ErrorIs(t, err, gate.ErrNotPowerOfTwo)

	one := matrix.Identity(1)
	_, err = gate.New(one, "bad")
	require.ErrorIs(t, err, gate.ErrNotPowerOfTwo)

	shear, err := matrix.NewFromRows([][]complex128{{1, 1}, {0, 1}})
	require.NoError(t, err)
	_, err = gate.New(shear, "bad")
	require.ErrorIs(t, err, gate.ErrNotUnitary)

	_, err = gate.New(nil, "bad")
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNew_CopiesMatrix(t *testing.T) {
	m := matrix.PauliX()
	g, err := gate.New(m, "")
	require.NoError(t, err)
	assert.Equal(t, "U", g.Name())
	require.NoError(t, m.Set(0, 0, 5))

	v, err := g.Matrix().At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), v)
	assert.Equal(t, "U/1", g.String())
}

func TestClaim_Once(t *testing.T) {
	g, err := gate.CNOT()
	require.NoError(t, err)
	require.Equal(t, uuid.Nil, g.Owner())

	owner := uuid.New()
	require.NoError(t, ownership.Claim(g, owner))
	require.Equal(t, owner, g.Owner())
	require.ErrorIs(t, ownership.Claim(g, uuid.New()), gate.ErrAlreadyAttached)
	require.Equal(t, owner, g.Owner())

	require.ErrorIs(t, ownership.Claim("CNOT", owner), ownership.ErrNotGate)
}
