package dct

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestFromRowsConvertsIntegers(t *testing.T) {
	m, err := FromRows([][]uint8{{1, 2}, {3, 255}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	if m.N != 2 {
		t.Fatalf("N = %d, want 2", m.N)
	}
	if want := []float64{1, 2, 3, 255}; !reflect.DeepEqual(m.Data, want) {
		t.Fatalf("Data = %v, want %v", m.Data, want)
	}
}

func TestFromRowsConvertsFloat32(t *testing.T) {
	m, err := FromRows([][]float32{{0.5}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	if m.At(0, 0) != 0.5 {
		t.Fatalf("At(0, 0) = %v, want 0.5", m.At(0, 0))
	}
}

func TestFromRowsRejectsBadShapes(t *testing.T) {
	tests := []struct {
		name string
		rows [][]float64
	}{
		{"nil", nil},
		{"empty", [][]float64{}},
		{"empty row", [][]float64{{}}},
		{"wide", [][]float64{{1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4}}},
		{"ragged", [][]float64{{1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4, 5}}},
		{"short row", [][]float64{{1, 2}, {1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromRows(tt.rows)
			if !errors.Is(err, ErrShape) {
				t.Fatalf("err = %v, want ErrShape", err)
			}
			if m != nil {
				t.Fatalf("got matrix %+v alongside an error", m)
			}
		})
	}
}

func TestMatrixAccessors(t *testing.T) {
	m := NewMatrix(3)
	m.Set(1, 2, 7)

	if m.At(1, 2) != 7 {
		t.Fatalf("At(1, 2) = %v, want 7", m.At(1, 2))
	}
	if want := []float64{0, 0, 7}; !reflect.DeepEqual(m.Row(1), want) {
		t.Fatalf("Row(1) = %v, want %v", m.Row(1), want)
	}

	m.Row(2)[0] = 5
	if m.Data[6] != 5 {
		t.Fatalf("Row does not alias storage: Data[6] = %v", m.Data[6])
	}
}

func TestMatrixRowsAreCopies(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2}, {3, 4}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	rows := m.Rows()
	rows[0][0] = 99

	if m.At(0, 0) != 1 {
		t.Fatalf("Rows aliases storage: At(0, 0) = %v", m.At(0, 0))
	}
	if want := [][]float64{{99, 2}, {3, 4}}; !reflect.DeepEqual(rows, want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
}

func TestMatrixCloneAndTranspose(t *testing.T) {
	m, err := FromRows([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}

	c := m.Clone()
	c.Set(0, 0, -1)
	if m.At(0, 0) != 1 {
		t.Fatalf("Clone aliases storage: At(0, 0) = %v", m.At(0, 0))
	}

	if want := []float64{1, 4, 7, 2, 5, 8, 3, 6, 9}; !reflect.DeepEqual(m.Transpose().Data, want) {
		t.Fatalf("Transpose = %v, want %v", m.Transpose().Data, want)
	}
}

func TestMatrixValidate(t *testing.T) {
	var nilMatrix *Matrix

	tests := []struct {
		name string
		m    *Matrix
	}{
		{"nil", nilMatrix},
		{"zero", NewMatrix(0)},
		{"short data", &Matrix{N: 2, Data: make([]float64, 3)}},
		{"long data", &Matrix{N: 2, Data: make([]float64, 5)}},
		{"overflowing N", &Matrix{N: math.MaxInt}},
		{"too large", &Matrix{N: MaxSize + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.m.validate(); !errors.Is(err, ErrShape) {
				t.Fatalf("validate() = %v, want ErrShape", err)
			}
		})
	}

	if err := NewMatrix(2).validate(); err != nil {
		t.Fatalf("validate() on 2x2 = %v, want nil", err)
	}
}
