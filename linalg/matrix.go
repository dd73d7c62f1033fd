package linalg

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrNotInvertible = errors.New("linalg: matrix is not invertible")
	ErrShape         = errors.New("linalg: dimension mismatch")
)

// Matrix is a rows x cols grid of float64 values.
type Matrix struct {
	d *mat.Dense
}

// NewMatrix creates a rows x cols matrix from row-major data. data is
// copied. A nil data slice yields a zero matrix.
func NewMatrix(rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrShape, rows, cols)
	}
	if data != nil && len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values for %dx%d", ErrShape, len(data), rows, cols)
	}
	var backing []float64
	if data != nil {
		backing = make([]float64, len(data))
		copy(backing, data)
	}
	return &Matrix{d: mat.NewDense(rows, cols, backing)}, nil
}

// Zeros returns a rows x cols matrix of zeros. It panics if either
// dimension is not positive.
func Zeros(rows, cols int) *Matrix {
	return &Matrix{d: mat.NewDense(rows, cols, nil)}
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := Zeros(n, n)
	for i := range n {
		m.d.Set(i, i, 1)
	}
	return m
}

// FromRows builds a matrix from a slice of equally long rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty rows", ErrShape)
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrShape, i, len(r), cols)
		}
		data = append(data, r...)
	}
	return &Matrix{d: mat.NewDense(len(rows), cols, data)}, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (rows, cols int) {
	return m.d.Dims()
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.d.At(i, j)
}

// Rows returns the matrix as a freshly allocated slice of rows.
func (m *Matrix) Rows() [][]float64 {
	r, c := m.d.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		mat.Row(out[i], i, m.d)
	}
	return out
}

// T returns the transpose.
func (m *Matrix) T() *Matrix {
	var out mat.Dense
	out.CloneFrom(m.d.T())
	return &Matrix{d: &out}
}

// Add returns m + other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := sameShape(m, other); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Add(m.d, other.d)
	return &Matrix{d: &out}, nil
}

// Sub returns m - other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if err := sameShape(m, other); err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Sub(m.d, other.d)
	return &Matrix{d: &out}, nil
}

// Scale returns f * m.
func (m *Matrix) Scale(f float64) *Matrix {
	var out mat.Dense
	out.Scale(f, m.d)
	return &Matrix{d: &out}
}

// AddDiagonal returns m + v*I. m must be square.
func (m *Matrix) AddDiagonal(v float64) (*Matrix, error) {
	r, c := m.d.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: diagonal of %dx%d", ErrShape, r, c)
	}
	out := mat.DenseCopyOf(m.d)
	for i := range r {
		out.Set(i, i, out.At(i, i)+v)
	}
	return &Matrix{d: out}, nil
}

// Mul returns the matrix product m * other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	_, c := m.d.Dims()
	r, _ := other.d.Dims()
	if c != r {
		return nil, fmt.Errorf("%w: product of %s and %s", ErrShape, shape(m), shape(other))
	}
	var out mat.Dense
	out.Mul(m.d, other.d)
	return &Matrix{d: &out}, nil
}

// MulVec returns the matrix-vector product m * v.
func (m *Matrix) MulVec(v []float64) ([]float64, error) {
	r, c := m.d.Dims()
	if c != len(v) {
		return nil, fmt.Errorf("%w: %s times vector of length %d", ErrShape, shape(m), len(v))
	}
	out := mat.NewVecDense(r, nil)
	out.MulVec(m.d, mat.NewVecDense(len(v), append([]float64(nil), v...)))
	return out.RawVector().Data, nil
}

// Invert returns the inverse of the square matrix m.
//
// Singular input, and input whose condition number exceeds gonum's
// mat.ConditionTolerance, fail with ErrNotInvertible.
func Invert(m *Matrix) (*Matrix, error) {
	r, c := m.d.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: cannot invert %dx%d", ErrShape, r, c)
	}
	var out mat.Dense
	if err := out.Inverse(m.d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotInvertible, err)
	}
	return &Matrix{d: &out}, nil
}

func sameShape(a, b *Matrix) error {
	ar, ac := a.d.Dims()
	br, bc := b.d.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("%w: %s vs %s", ErrShape, shape(a), shape(b))
	}
	return nil
}

func shape(m *Matrix) string {
	r, c := m.d.Dims()
	return fmt.Sprintf("%dx%d", r, c)
}
