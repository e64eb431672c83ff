package circuit

import (
	"io"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcircuit/gate"
)

// randomSpec picks a catalogue gate that fits into n lines.
func randomSpec(r *rand.Rand, n int) gate.Spec {
	for {
		switch r.IntN(9) {
		case 0:
			return gate.Spec{Kind: gate.KindX, Width: 1 + r.IntN(2)}
		case 1:
			return gate.Spec{Kind: gate.KindY, Width: 1}
		case 2:
			return gate.Spec{Kind: gate.KindZ, Width: 1 + r.IntN(2)}
		case 3:
			return gate.Spec{Kind: gate.KindPhaseShift, Width: 1, Theta: r.Float64() * 2 * math.Pi}
		case 4:
			return gate.Spec{Kind: gate.KindCNOT}
		case 5:
			if n >= 3 {
				return gate.Spec{Kind: gate.KindToffoli}
			}
		case 6:
			return gate.Spec{Kind: gate.KindH, Width: 1}
		case 7:
			return gate.Spec{Kind: gate.KindSqrtNot, Width: 1}
		case 8:
			return gate.Spec{Kind: gate.KindQFT, Width: 2}
		}
	}
}

// classical reports whether a kind maps basis states to basis states.
func classical(k gate.Kind) bool {
	switch k {
	case gate.KindH, gate.KindSqrtNot, gate.KindQFT:
		return false
	}

	return true
}

// randomCircuit builds an acyclic circuit by appending gates to randomly
// chosen open line ends and finally routing the lines to a shuffled set of
// boundary outputs. It reports whether every gate is classical.
func randomCircuit(t *testing.T, r *rand.Rand, n int) (*Circuit, bool) {
	t.Helper()
	for {
		c, err := New(n, WithRand(rand.New(rand.NewPCG(r.Uint64(), 0))), WithLogger(log.New(io.Discard)))
		require.NoError(t, err)

		open := make([]Endpoint, n) // open[line]: where the line currently ends
		for i := range open {
			open[i] = Endpoint{Node: Boundary, Port: i}
		}
		onlyClassical := true
		for g := 1 + r.IntN(5); g > 0; g-- {
			spec := randomSpec(r, n)
			if spec.Width > n {
				spec.Width = n
			}
			id, err := c.AddGate(spec)
			require.NoError(t, err)
			onlyClassical = onlyClassical && classical(spec.Kind)

			lines := r.Perm(n)[:c.nodes[id].g.Len()]
			for p, line := range lines {
				_, err = c.AddWire(open[line].Node, open[line].Port, id, p)
				require.NoError(t, err)
				open[line] = Endpoint{Node: id, Port: p}
			}
		}
		for out, line := range r.Perm(n) {
			_, err = c.AddWire(open[line].Node, open[line].Port, Boundary, out)
			require.NoError(t, err)
		}

		if len(c.InternalWires()) <= 8 {
			return c, onlyClassical
		}
	}
}

// TestStrategies_Agree checks the enumerative weights against the squared
// amplitudes of the evolved state for random circuits of 3 to 5 qubits,
// and against the decoded state-vector weights when every gate is classical.
func TestStrategies_Agree(t *testing.T) {
	r := rand.New(rand.NewPCG(2024, 10))
	for trial := 0; trial < 40; trial++ {
		n := 3 + r.IntN(3)
		c, onlyClassical := randomCircuit(t, r, n)
		require.True(t, c.Check())

		for i := 0; i < 1<<n; i++ {
			in := bitsOf(i, n)
			w1, _, err := c.Distribution(in, MethodSumOverHistories)
			require.NoError(t, err)

			state, err := c.evolve(in)
			require.NoError(t, err)
			raw := state.RawRows()
			for o := range w1 {
				a := raw[o][0]
				require.InDeltaf(t, real(a)*real(a)+imag(a)*imag(a), w1[o], 1e-10,
					"trial %d n=%d in=%v outcome %d", trial, n, in, o)
			}

			if !onlyClassical {
				continue
			}
			w2, _, err := c.Distribution(in, MethodStateVector)
			require.NoError(t, err)
			require.InDeltaSlicef(t, w1, w2, 1e-10, "trial %d in=%v", trial, in)
		}
	}
}

func TestSample_FollowsWeights(t *testing.T) {
	c, err := New(2, WithSeed(3))
	require.NoError(t, err)

	require.Equal(t, 2, c.sample([]float64{0, 0, 1, 0}))
	require.Equal(t, 3, c.sample([]float64{0, 0, 0, 1}))

	counts := make([]int, 4)
	for i := 0; i < 4000; i++ {
		counts[c.sample([]float64{0.25, 0, 0.75, 0})]++
	}
	require.Zero(t, counts[1])
	require.Zero(t, counts[3])
	require.InDelta(t, 1000, counts[0], 150)
	require.InDelta(t, 3000, counts[2], 150)
}

func TestBits_RoundTrip(t *testing.T) {
	for i := 0; i < 32; i++ {
		require.Equal(t, i, indexOf(bitsOf(i, 5)))
	}
	require.Equal(t, []int{1, 0, 1}, bitsOf(5, 3))
}
