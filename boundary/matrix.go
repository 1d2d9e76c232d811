// SPDX-License-Identifier: MIT

package boundary

import (
	"fmt"
	"strings"
)

// Matrix is a row-major matrix over GF(2).
// r is rows, c is columns, and data holds r*c entries in {0,1}.
type Matrix struct {
	r, c int
	data []uint8
}

// NewMatrix creates an r×c zero matrix. Zero-sized sides are allowed (a
// boundary map into or out of an empty chain group).
// Complexity: O(r*c).
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, boundaryErrorf(opNewMatrix, fmt.Errorf("%dx%d: %w", rows, cols, ErrBadShape))
	}

	return &Matrix{r: rows, c: cols, data: make([]uint8, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Matrix) indexOf(tag string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, boundaryErrorf(tag, fmt.Errorf("(%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange))
	}

	return row*m.c + col, nil
}

// At returns the entry at (row, col).
// Complexity: O(1).
func (m *Matrix) At(row, col int) (uint8, error) {
	idx, err := m.indexOf(opAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v ∈ {0,1} at (row, col).
// Complexity: O(1).
func (m *Matrix) Set(row, col int, v uint8) error {
	if v > 1 {
		return boundaryErrorf(opSet, fmt.Errorf("value %d: %w", v, ErrNonBinary))
	}
	idx, err := m.indexOf(opSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]uint8, len(m.data))
	copy(data, m.data)

	return &Matrix{r: m.r, c: m.c, data: data}
}

// Equal reports whether m and o have the same shape and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Ones returns the number of 1 entries.
func (m *Matrix) Ones() int {
	n := 0
	for _, v := range m.data {
		n += int(v)
	}

	return n
}

// SwapRows exchanges rows i and k in place. Indices are trusted.
// Complexity: O(c).
func (m *Matrix) SwapRows(i, k int) {
	if i == k {
		return
	}
	ri, rk := m.data[i*m.c:(i+1)*m.c], m.data[k*m.c:(k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// SwapCols exchanges columns j and l in place. Indices are trusted.
// Complexity: O(r).
func (m *Matrix) SwapCols(j, l int) {
	if j == l {
		return
	}
	for i := 0; i < m.r; i++ {
		base := i * m.c
		m.data[base+j], m.data[base+l] = m.data[base+l], m.data[base+j]
	}
}

// XorRowInto adds row src to row dst over GF(2).
// Complexity: O(c).
func (m *Matrix) XorRowInto(dst, src int) {
	rd, rs := m.data[dst*m.c:(dst+1)*m.c], m.data[src*m.c:(src+1)*m.c]
	for j := range rd {
		rd[j] ^= rs[j]
	}
}

// XorColInto adds column src to column dst over GF(2).
// Complexity: O(r).
func (m *Matrix) XorColInto(dst, src int) {
	for i := 0; i < m.r; i++ {
		base := i * m.c
		m.data[base+dst] ^= m.data[base+src]
	}
}

// String renders one bracketed row per line, e.g. "[1 0 1]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte('0' + m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
