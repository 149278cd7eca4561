package core

import (
	"errors"
	"fmt"
	"strings"
)

// MaxMatrixSize is the largest supported matrix dimension.
// Determinants and inverses use cofactor expansion, which is exponential in
// the size; larger matrices would need an elimination-based solver instead.
const MaxMatrixSize = 4

var (
	// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero
	ErrSingularMatrix = errors.New("matrix: singular matrix has no inverse")
	// ErrMatrixSize is returned for non-square or oversized input
	ErrMatrixSize = errors.New("matrix: invalid size")
)

// Matrix is a square matrix of size 1..MaxMatrixSize.
// It is a value type; the zero value has size 0 and is not usable.
type Matrix struct {
	size  int
	cells [MaxMatrixSize][MaxMatrixSize]float64
}

// NewMatrix creates a matrix from its rows. The rows must form a square of size 1..4.
func NewMatrix(rows ...[]float64) (Matrix, error) {
	n := len(rows)
	if n == 0 || n > MaxMatrixSize {
		return Matrix{}, fmt.Errorf("%w: %d rows", ErrMatrixSize, n)
	}

	m := Matrix{size: n}
	for i, row := range rows {
		if len(row) != n {
			return Matrix{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrMatrixSize, i, len(row), n)
		}
		copy(m.cells[i][:n], row)
	}
	return m, nil
}

// MustMatrix is like NewMatrix but panics on invalid input
func MustMatrix(rows ...[]float64) Matrix {
	m, err := NewMatrix(rows...)
	if err != nil {
		panic(err)
	}
	return m
}

// IdentityMatrix returns the size×size identity matrix
func IdentityMatrix(size int) Matrix {
	if size <= 0 || size > MaxMatrixSize {
		panic(fmt.Sprintf("core: identity matrix size %d out of range", size))
	}
	m := Matrix{size: size}
	for i := 0; i < size; i++ {
		m.cells[i][i] = 1
	}
	return m
}

// Identity returns the 4×4 identity transform
func Identity() Matrix {
	return IdentityMatrix(4)
}

// Size returns the matrix dimension
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at row, col
func (m Matrix) At(row, col int) float64 {
	m.checkIndex(row, col)
	return m.cells[row][col]
}

// Equal reports whether both matrices have the same size and every element is within Epsilon
func (m Matrix) Equal(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			if !ApproxEqual(m.cells[i][j], other.cells[i][j]) {
				return false
			}
		}
	}
	return true
}

// Multiply returns m × other
func (m Matrix) Multiply(other Matrix) Matrix {
	if m.size != other.size {
		panic(fmt.Sprintf("core: cannot multiply %dx%d by %dx%d matrix", m.size, m.size, other.size, other.size))
	}

	out := Matrix{size: m.size}
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			var sum float64
			for k := 0; k < m.size; k++ {
				sum += m.cells[row][k] * other.cells[k][col]
			}
			out.cells[row][col] = sum
		}
	}
	return out
}

// MultiplyTuple treats t as a column vector and returns m × t. m must be 4×4.
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	if m.size != 4 {
		panic(fmt.Sprintf("core: cannot multiply %dx%d matrix by a tuple", m.size, m.size))
	}

	c := &m.cells
	return Tuple{
		X: c[0][0]*t.X + c[0][1]*t.Y + c[0][2]*t.Z + c[0][3]*t.W,
		Y: c[1][0]*t.X + c[1][1]*t.Y + c[1][2]*t.Z + c[1][3]*t.W,
		Z: c[2][0]*t.X + c[2][1]*t.Y + c[2][2]*t.Z + c[2][3]*t.W,
		W: c[3][0]*t.X + c[3][1]*t.Y + c[3][2]*t.Z + c[3][3]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	out := Matrix{size: m.size}
	for i := 0; i < m.size; i++ {
		for j := 0; j < m.size; j++ {
			out.cells[j][i] = m.cells[i][j]
		}
	}
	return out
}

// Submatrix returns a copy with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	m.checkIndex(row, col)
	if m.size < 2 {
		panic("core: cannot take submatrix of a 1x1 matrix")
	}

	out := Matrix{size: m.size - 1}
	r := 0
	for i := 0; i < m.size; i++ {
		if i == row {
			continue
		}
		c := 0
		for j := 0; j < m.size; j++ {
			if j == col {
				continue
			}
			out.cells[r][c] = m.cells[i][j]
			c++
		}
		r++
	}
	return out
}

// Minor returns the determinant of the submatrix at row, col
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at row, col, negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Determinant returns the determinant using cofactor expansion along row 0
func (m Matrix) Determinant() float64 {
	switch m.size {
	case 0:
		panic("core: determinant of an empty matrix")
	case 1:
		return m.cells[0][0]
	case 2:
		return m.cells[0][0]*m.cells[1][1] - m.cells[0][1]*m.cells[1][0]
	}

	var det float64
	for col := 0; col < m.size; col++ {
		det += m.cells[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the matrix has an inverse
func (m Matrix) Invertible() bool {
	return m.Determinant() != 0
}

// Inverse returns the inverse matrix, or ErrSingularMatrix when the determinant is zero.
// Each element is cofactor(row, col) / determinant stored at [col][row].
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}

	out := Matrix{size: m.size}
	if m.size == 1 {
		out.cells[0][0] = 1 / det
		return out, nil
	}
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			out.cells[col][row] = m.Cofactor(row, col) / det
		}
	}
	return out, nil
}

func (m Matrix) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.size; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j := 0; j < m.size; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.cells[i][j])
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

func (m Matrix) checkIndex(row, col int) {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		panic(fmt.Sprintf("core: index (%d, %d) out of range for %dx%d matrix", row, col, m.size, m.size))
	}
}
