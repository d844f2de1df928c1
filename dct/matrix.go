package dct

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is any real sample type accepted by FromRows.
type Number interface {
	constraints.Float | constraints.Integer
}

// Matrix is a square matrix stored contiguously in row-major order.
type Matrix struct {
	N    int
	Data []float64
}

// NewMatrix returns a zeroed n×n matrix.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		n = 0
	}
	return &Matrix{N: n, Data: make([]float64, n*n)}
}

// FromRows copies rows into a new Matrix, converting samples to float64.
// It fails with ErrShape if rows is empty, ragged, or not square.
func FromRows[T Number](rows [][]T) (*Matrix, error) {
	n, err := validateRows(rows)
	if err != nil {
		return nil, err
	}

	m := NewMatrix(n)
	for i, row := range rows {
		dst := m.Row(i)
		for j, v := range row {
			dst[j] = float64(v)
		}
	}
	return m, nil
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.N+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.N+j] = v
}

// Row returns row i as a slice aliasing the matrix storage.
func (m *Matrix) Row(i int) []float64 {
	return m.Data[i*m.N : (i+1)*m.N]
}

// Rows returns the matrix as a freshly allocated slice of rows.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.N)
	for i := range out {
		out[i] = append([]float64(nil), m.Row(i)...)
	}
	return out
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{N: m.N, Data: append([]float64(nil), m.Data...)}
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Matrix) Transpose() *Matrix {
	t := NewMatrix(m.N)
	for i := 0; i < m.N; i++ {
		for j, v := range m.Row(i) {
			t.Data[j*m.N+i] = v
		}
	}
	return t
}

func (m *Matrix) validate() error {
	if m == nil || m.N <= 0 {
		return fmt.Errorf("%w: empty matrix", ErrShape)
	}
	if m.N > MaxSize || len(m.Data)/m.N != m.N || len(m.Data)%m.N != 0 {
		return fmt.Errorf("%w: %d elements for N=%d", ErrShape, len(m.Data), m.N)
	}
	return nil
}
