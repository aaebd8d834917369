// Package matrix manages matrices whose elements come from a ring:
// float64 values or symbolic expressions alike.
package matrix

import (
	"fmt"
	"strings"
)

// Ring supplies the arithmetic needed to multiply, add and take the
// determinant of matrices with elements of type T.
type Ring[T any] interface {
	Zero() T
	One() T
	Add(x, y T) T
	Mul(x, y T) T
	Neg(x T) T
}

type Matrix[T any] struct {
	// row count and col count
	rows, cols int
	// The matrix elements arranged, [r=0,c=0], [0,1], [0,2] ...
	data []T
}

// NewMatrix creates a rows x cols matrix of zero values of T.
func NewMatrix[T any](rows, cols int) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("need positive dimensions, not %dx%d", rows, cols)
	}
	m := &Matrix[T]{
		rows: rows,
		cols: cols,
		data: make([]T, rows*cols),
	}
	return m, nil
}

// FromRows creates a matrix from equal length rows.
func FromRows[T any](rows ...[]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("need at least one row")
	}
	m, err := NewMatrix[T](len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", r, len(row), m.cols)
		}
		copy(m.data[r*m.cols:], row)
	}
	return m, nil
}

// Rows returns the number of rows of m.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns of m.
func (m *Matrix[T]) Cols() int { return m.cols }

// String serializes a matrix for displaying.
func (m *Matrix[T]) String() string {
	var rs []string
	for r := 0; r < m.rows; r++ {
		var cs []string
		for c := 0; c < m.cols; c++ {
			cs = append(cs, fmt.Sprint(m.data[c+m.cols*r]))
		}
		rs = append(rs, "["+strings.Join(cs, ", ")+"]")
	}
	return "[" + strings.Join(rs, ", ") + "]"
}

// Set sets the value of a matrix element.
func (m *Matrix[T]) Set(row, col int, e T) error {
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return fmt.Errorf("bad cell: [%d,%d] in %dx%d matrix", row, col, m.rows, m.cols)
	}
	m.data[col+m.cols*row] = e
	return nil
}

// El returns the row,col element of the matrix.
func (m *Matrix[T]) El(row, col int) T {
	return m.data[col+m.cols*row]
}

// Row returns a copy of one row of the matrix.
func (m *Matrix[T]) Row(row int) []T {
	return append([]T(nil), m.data[row*m.cols:(row+1)*m.cols]...)
}

// Identity returns a square identity matrix of dimension n.
func Identity[T any](ring Ring[T], n int) (*Matrix[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("invalid identity matrix of dimension n=%d", n)
	}
	m, _ := NewMatrix[T](n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				m.Set(i, j, ring.One())
			} else {
				m.Set(i, j, ring.Zero())
			}
		}
	}
	return m, nil
}

// Transpose returns the transpose of a specified matrix.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	n, err := NewMatrix[T](m.cols, m.rows)
	if err != nil {
		panic(err)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			n.Set(j, i, m.El(i, j))
		}
	}
	return n
}

// Mul multiplies m x n with conventional matrix multiplication.
func (m *Matrix[T]) Mul(ring Ring[T], n *Matrix[T]) (*Matrix[T], error) {
	if m.cols != n.rows {
		return nil, fmt.Errorf("a cols(%d) != b rows(%d)", m.cols, n.rows)
	}
	a, err := NewMatrix[T](m.rows, n.cols)
	if err != nil {
		return nil, err
	}
	for r := 0; r < a.rows; r++ {
		for c := 0; c < a.cols; c++ {
			e := ring.Zero()
			for i := 0; i < m.cols; i++ {
				e = ring.Add(e, ring.Mul(m.El(r, i), n.El(i, c)))
			}
			a.Set(r, c, e)
		}
	}
	return a, nil
}

// Mx multiplies two matrices and panics on error.
func (m *Matrix[T]) Mx(ring Ring[T], n *Matrix[T]) *Matrix[T] {
	a, err := m.Mul(ring, n)
	if err != nil {
		panic(err)
	}
	return a
}

// Sum computes m + scale*n.
func (m *Matrix[T]) Sum(ring Ring[T], n *Matrix[T], scale T) (*Matrix[T], error) {
	if m.rows != n.rows || m.cols != n.cols {
		return nil, fmt.Errorf("inequivalent dimensions %dx%d != %dx%d", m.rows, m.cols, n.rows, n.cols)
	}
	a, _ := NewMatrix[T](m.rows, m.cols)
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			a.Set(r, c, ring.Add(m.El(r, c), ring.Mul(n.El(r, c), scale)))
		}
	}
	return a, nil
}

// Add adds two matrices, and panics on error.
func (m *Matrix[T]) Add(ring Ring[T], n *Matrix[T], scale T) *Matrix[T] {
	a, err := m.Sum(ring, n, scale)
	if err != nil {
		panic(err)
	}
	return a
}

// Det computes the determinant of a square matrix by cofactor
// expansion along the first row.
func (m *Matrix[T]) Det(ring Ring[T]) (T, error) {
	if m.rows != m.cols {
		var z T
		return z, fmt.Errorf("determinant of non-square %dx%d matrix", m.rows, m.cols)
	}
	return m.minor(ring, 0, make([]bool, m.cols)), nil
}

// minor expands the determinant of the sub-matrix formed from rows
// row.. and the columns not marked as used.
func (m *Matrix[T]) minor(ring Ring[T], row int, used []bool) T {
	if row == m.rows {
		return ring.One()
	}
	d := ring.Zero()
	sign := false
	for c := 0; c < m.cols; c++ {
		if used[c] {
			continue
		}
		used[c] = true
		x := ring.Mul(m.El(row, c), m.minor(ring, row+1, used))
		used[c] = false
		if sign {
			x = ring.Neg(x)
		}
		d = ring.Add(d, x)
		sign = !sign
	}
	return d
}

// Equal compares two matrices element by element with eq.
func (m *Matrix[T]) Equal(n *Matrix[T], eq func(x, y T) bool) bool {
	if m.rows != n.rows || m.cols != n.cols {
		return false
	}
	for i := range m.data {
		if !eq(m.data[i], n.data[i]) {
			return false
		}
	}
	return true
}

// Apply computes a new matrix by applying f to every element of m.
func Apply[T, U any](m *Matrix[T], f func(T) U) *Matrix[U] {
	n, _ := NewMatrix[U](m.rows, m.cols)
	for i, x := range m.data {
		n.data[i] = f(x)
	}
	return n
}

// ApplyErr is Apply for element functions that can fail. The first
// error aborts the computation.
func ApplyErr[T, U any](m *Matrix[T], f func(T) (U, error)) (*Matrix[U], error) {
	n, _ := NewMatrix[U](m.rows, m.cols)
	for i, x := range m.data {
		y, err := f(x)
		if err != nil {
			return nil, fmt.Errorf("element [%d,%d]: %w", i/m.cols, i%m.cols, err)
		}
		n.data[i] = y
	}
	return n, nil
}
