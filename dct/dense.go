package dct

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// TransformDense computes the 2D DCT-II of a gonum matrix. It follows the
// same shape and finiteness rules as Transform.
func TransformDense(m mat.Matrix, opts ...Option) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", ErrShape)
	}
	r, c := m.Dims()
	if r == 0 || r != c {
		return nil, fmt.Errorf("%w: dims %dx%d", ErrShape, r, c)
	}

	in := NewMatrix(r)
	for i := 0; i < r; i++ {
		row := in.Row(i)
		for j := range row {
			row[j] = m.At(i, j)
		}
	}

	out, err := NewTransformer(opts...).TransformMatrix(in)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(out.N, out.N, out.Data), nil
}

// BasisDense returns Basis(n) as a gonum matrix.
func BasisDense(n int) (*mat.Dense, error) {
	b, err := Basis(n)
	if err != nil {
		return nil, err
	}
	return mat.NewDense(b.N, b.N, b.Data), nil
}
