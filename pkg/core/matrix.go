package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero
var ErrSingularMatrix = errors.New("core: matrix is not invertible")

// Matrix is a square row-major matrix of size 2, 3 or 4. Submatrices of a
// 4x4 transform are stored in the same fixed grid so no allocation is needed.
type Matrix struct {
	size  int
	cells [4][4]float64
}

// NewMatrix creates a square matrix from rows. All rows must have the same
// length as the number of rows, at most 4.
func NewMatrix(rows ...[]float64) Matrix {
	n := len(rows)
	if n < 1 || n > 4 {
		panic(fmt.Sprintf("core: unsupported matrix size %d", n))
	}
	m := Matrix{size: n}
	for r, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("core: row %d has %d columns, want %d", r, len(row), n))
		}
		copy(m.cells[r][:n], row)
	}
	return m
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	m := Matrix{size: 4}
	for i := 0; i < 4; i++ {
		m.cells[i][i] = 1
	}
	return m
}

// Size returns the number of rows (and columns)
func (m Matrix) Size() int {
	return m.size
}

// At returns the cell at row r, column c
func (m Matrix) At(r, c int) float64 {
	return m.cells[r][c]
}

// Set returns a copy of m with cell (r, c) replaced
func (m Matrix) Set(r, c int, v float64) Matrix {
	m.cells[r][c] = v
	return m
}

// Equals compares two matrices cell by cell within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			if !FloatEquals(m.cells[r][c], other.cells[r][c]) {
				return false
			}
		}
	}
	return true
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	out := Matrix{size: m.size}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			var sum float64
			for k := 0; k < m.size; k++ {
				sum += m.cells[r][k] * other.cells[k][c]
			}
			out.cells[r][c] = sum
		}
	}
	return out
}

// MultiplyTuple returns the product of a 4x4 matrix and a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	row := func(r int) float64 {
		return m.cells[r][0]*t.X + m.cells[r][1]*t.Y + m.cells[r][2]*t.Z + m.cells[r][3]*t.W
	}
	return Tuple{X: row(0), Y: row(1), Z: row(2), W: row(3)}
}

// Then composes a transform applied after m, so that
// a.Then(b).MultiplyTuple(p) == b * a * p
func (m Matrix) Then(next Matrix) Matrix {
	return next.Multiply(m)
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	out := Matrix{size: m.size}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			out.cells[c][r] = m.cells[r][c]
		}
	}
	return out
}

// Determinant computes the determinant by first-row cofactor expansion
func (m Matrix) Determinant() float64 {
	if m.size == 1 {
		return m.cells[0][0]
	}
	if m.size == 2 {
		return m.cells[0][0]*m.cells[1][1] - m.cells[0][1]*m.cells[1][0]
	}
	var det float64
	for c := 0; c < m.size; c++ {
		det += m.cells[0][c] * m.Cofactor(0, c)
	}
	return det
}

// Submatrix removes the given row and column
func (m Matrix) Submatrix(row, col int) Matrix {
	out := Matrix{size: m.size - 1}
	dr := 0
	for r := 0; r < m.size; r++ {
		if r == row {
			continue
		}
		dc := 0
		for c := 0; c < m.size; c++ {
			if c == col {
				continue
			}
			out.cells[dr][dc] = m.cells[r][c]
			dc++
		}
		dr++
	}
	return out
}

// Minor is the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor is the signed minor: (-1)^(row+col) * minor
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse computes the inverse through the adjugate: the transposed
// cofactor matrix divided by the determinant.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}
	out := Matrix{size: m.size}
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			out.cells[c][r] = m.Cofactor(r, c) / det
		}
	}
	return out, nil
}

// MustInverse is like Inverse but panics on a singular matrix. A correctly
// constructed scene never contains one.
func (m Matrix) MustInverse() Matrix {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// String renders the matrix one row per line
func (m Matrix) String() string {
	var sb strings.Builder
	for r := 0; r < m.size; r++ {
		sb.WriteString("|")
		for c := 0; c < m.size; c++ {
			fmt.Fprintf(&sb, " %9.5f |", m.cells[r][c])
		}
		if r < m.size-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
