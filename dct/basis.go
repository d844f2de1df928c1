package dct

import "math"

// Basis returns the n×n DCT-II cosine basis,
//
//	basis[i][j] = cos((j + 0.5) * i * π / n)
//
// Row i holds the cosine sequence for frequency i sampled at every spatial
// position j. It fails with ErrDomain for n < 1.
func Basis(n int) (*Matrix, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	fact := math.Pi / float64(n)
	b := NewMatrix(n)
	for i := 0; i < n; i++ {
		mult := float64(i) * fact
		row := b.Row(i)
		for j := range row {
			row[j] = math.Cos((float64(j) + 0.5) * mult)
		}
	}
	return b, nil
}

// kernel returns the position-major table used by both passes,
// kernel[j][i] = basis[i][j]: row j holds the weight of sample j for every
// output frequency i, so each pass accumulates contiguous kernel rows.
func kernel(n int) (basis, k *Matrix, err error) {
	basis, err = Basis(n)
	if err != nil {
		return nil, nil, err
	}
	return basis, basis.Transpose(), nil
}
