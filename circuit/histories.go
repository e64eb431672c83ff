// SPDX-License-Identifier: MIT

package circuit

// sumOverHistories computes the exact outcome distribution by summing, for
// every output bit-string, the amplitude of every assignment of the internal
// wires. A gate contributes M[out][in], where out and in are the big-endian
// numbers read off its output and input wires.
func (c *Circuit) sumOverHistories(in []int) []float64 {
	n := c.size
	var internal []WireID
	for _, w := range c.wires {
		if w.Internal() {
			internal = append(internal, w.ID)
		}
	}
	rows := make([][][]complex128, len(c.nodes))
	for id, nd := range c.nodes {
		rows[id] = nd.g.Matrix().RawRows()
	}

	values := make([]int, len(c.wires))
	weights := make([]float64, 1<<n)
	m := len(internal)
	for o := range weights {
		if !c.bindBoundary(values, in, bitsOf(o, n)) {
			continue
		}
		var amp complex128
		for a := 0; a < 1<<m; a++ {
			for k, w := range internal {
				values[w] = (a >> (m - 1 - k)) & 1
			}
			amp += c.history(values, rows)
		}
		weights[o] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}

	return weights
}

// bindBoundary writes the input and candidate output bits onto the boundary
// wires. It returns false when a wire running straight from input to output
// would need two different values.
func (c *Circuit) bindBoundary(values, in, out []int) bool {
	for p, w := range c.input {
		values[w] = in[p]
	}
	for p, w := range c.output {
		if from := c.wires[w].From; from.Node == Boundary && in[from.Port] != out[p] {
			return false
		}
		values[w] = out[p]
	}

	return true
}

// history multiplies the matrix entries selected by one full wire assignment.
func (c *Circuit) history(values []int, rows [][][]complex128) complex128 {
	prod := complex(1, 0)
	for _, id := range c.order {
		nd := c.nodes[id]
		r, col := 0, 0
		for p := range nd.in {
			r = r<<1 | values[nd.out[p]]
			col = col<<1 | values[nd.in[p]]
		}
		// M[out][in]: row from output wires, column from input wires, as in M·state.
		prod *= rows[id][r][col]
		if prod == 0 {
			return 0
		}
	}

	return prod
}
