// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major complex buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).

package matrix

import (
	"fmt"
	"strings"
)

// method tags used in error wrappers
const (
	ctxAt  = "At"
	ctxSet = "Set"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of complex128 values.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// Dense has value semantics at the API level: every operation in this package
// returns a fresh matrix and never mutates its operands.
type Dense struct {
	r, c int          // row and column counts (>0)
	data []complex128 // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors:
//   - ErrBadShape if rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// newDense is the internal allocator for shapes already known to be valid.
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}
}

// NewFromRows builds a Dense from a slice of rows, copying the values.
//
// Errors:
//   - ErrBadShape   if rows is empty or the first row is empty.
//   - ErrRaggedRows if any two rows differ in length.
func NewFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadShape
	}
	cols := len(rows[0])
	m := newDense(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d: %w", i, ErrRaggedRows)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// mustFromRows is used by the generators whose literal shapes are fixed.
func mustFromRows(rows [][]complex128) *Dense {
	m, err := NewFromRows(rows)
	if err != nil {
		panic(err) // programmer error: literal tables below are well-formed
	}

	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// IsSquare reports whether Rows == Cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// IsVector reports whether m is a single column.
func (m *Dense) IsVector() bool { return m.c == 1 }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// at is the unchecked accessor used by kernels after shape validation.
func (m *Dense) at(row, col int) complex128 { return m.data[row*m.c+col] }

// Column returns a copy of column j as a flat slice.
func (m *Dense) Column(j int) ([]complex128, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Column", 0, j, ErrOutOfRange)
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// RawRows returns a deep copy of the contents as a slice of rows.
func (m *Dense) RawRows() [][]complex128 {
	out := make([][]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = append([]complex128(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// Clone returns a deep copy of the matrix.
func (m *Dense) Clone() *Dense {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(formatComplex(m.data[i*m.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// formatComplex prints purely real values without the imaginary part.
func formatComplex(v complex128) string {
	if imag(v) == 0 {
		return fmt.Sprintf("%g", real(v))
	}

	return fmt.Sprintf("%g", v)
}
