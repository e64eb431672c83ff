package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcircuit/circuit"
	"github.com/katalvlaran/qcircuit/gate"
)

// paperCircuit builds the 7-gate, 6-qubit example: two CNOTs copy b0 and b1,
// two X gates negate the copies, T computes ¬b0∧¬b1 into line 4, a third
// CNOT copies that and a final X gives b0∨b1 on line 5.
// Gates are added out of order so that Sort has work to do.
func paperCircuit(t *testing.T) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(6, circuit.WithSeed(1))
	require.NoError(t, err)

	x3 := mustAdd(t, c, gate.Spec{Kind: gate.KindX, Width: 1})
	cn3 := mustAdd(t, c, gate.Spec{Kind: gate.KindCNOT})
	tg := mustAdd(t, c, gate.Spec{Kind: gate.KindToffoli})
	x1 := mustAdd(t, c, gate.Spec{Kind: gate.KindX, Width: 1})
	x2 := mustAdd(t, c, gate.Spec{Kind: gate.KindX, Width: 1})
	cn1 := mustAdd(t, c, gate.Spec{Kind: gate.KindCNOT})
	cn2 := mustAdd(t, c, gate.Spec{Kind: gate.KindCNOT})

	mustWire(t, c, circuit.Boundary, 0, cn1, 0)
	mustWire(t, c, circuit.Boundary, 2, cn1, 1)
	mustWire(t, c, cn1, 0, circuit.Boundary, 0)
	mustWire(t, c, cn1, 1, x1, 0)

	mustWire(t, c, circuit.Boundary, 1, cn2, 0)
	mustWire(t, c, circuit.Boundary, 3, cn2, 1)
	mustWire(t, c, cn2, 0, circuit.Boundary, 1)
	mustWire(t, c, cn2, 1, x2, 0)

	mustWire(t, c, x1, 0, tg, 0)
	mustWire(t, c, x2, 0, tg, 1)
	mustWire(t, c, circuit.Boundary, 4, tg, 2)
	_, err = c.AddWires(tg, []int{0, 1}, circuit.Boundary, []int{2, 3})
	require.NoError(t, err)

	mustWire(t, c, tg, 2, cn3, 0)
	mustWire(t, c, circuit.Boundary, 5, cn3, 1)
	mustWire(t, c, cn3, 0, circuit.Boundary, 4)
	mustWire(t, c, cn3, 1, x3, 0)
	mustWire(t, c, x3, 0, circuit.Boundary, 5)

	require.True(t, c.Check())
	require.Len(t, c.InternalWires(), 6)

	return c
}

func not(b int) int { return 1 - b }

func TestPaperCircuit_BothMethods(t *testing.T) {
	c := paperCircuit(t)
	for _, m := range []circuit.Method{
		circuit.MethodAuto,
		circuit.MethodSumOverHistories,
		circuit.MethodStateVector,
	} {
		for b0 := 0; b0 <= 1; b0++ {
			for b1 := 0; b1 <= 1; b1++ {
				out, err := c.Run([]int{b0, b1, 0, 0, 0, 0}, m)
				require.NoError(t, err)
				want := []int{b0, b1, not(b0), not(b1), not(b0) & not(b1), b0 | b1}
				assert.Equal(t, want, out, "method %v input %d%d", m, b0, b1)
			}
		}
	}
}

func TestPaperCircuit_SortRespectsWires(t *testing.T) {
	c := paperCircuit(t)
	require.NoError(t, c.Sort())

	pos := map[circuit.NodeID]int{}
	for i, id := range c.Gates() {
		pos[id] = i
	}
	for _, w := range c.InternalWires() {
		assert.Less(t, pos[w.From.Node], pos[w.To.Node], "wire %d", w.ID)
	}
}

func TestPaperCircuit_DistributionIsOneHot(t *testing.T) {
	c := paperCircuit(t)
	in := []int{1, 0, 0, 0, 0, 0}
	want := 0b100101 // b0=1,b1=0 → 1,0,0,1,0,1

	w1, used, err := c.Distribution(in, circuit.MethodSumOverHistories)
	require.NoError(t, err)
	require.Equal(t, circuit.MethodSumOverHistories, used)
	w2, _, err := c.Distribution(in, circuit.MethodStateVector)
	require.NoError(t, err)

	require.Len(t, w1, 64)
	for o := range w1 {
		expect := 0.0
		if o == want {
			expect = 1
		}
		assert.InDelta(t, expect, w1[o], 1e-10, "outcome %06b", o)
		assert.InDelta(t, expect, w2[o], 1e-10, "outcome %06b", o)
	}
}
