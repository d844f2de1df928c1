// Package dct computes the two-dimensional DCT-II of square sample matrices.
//
// The transform is separable: a 1D DCT is applied along every row of the
// input, then along every column of the intermediate result. Both passes
// contract against the same cosine basis
//
//	basis[i][j] = cos((j + 0.5) * i * π / N)
//
// where i indexes frequency and j indexes spatial position. For samples S
// and basis B the result is R = B·Sᵀ·Bᵀ, so R[u][v] pairs horizontal
// frequency u (along each row) with vertical frequency v (down each
// column), the transpose of the conventional layout. The output is
// unnormalized: a constant N×N input of value k yields R[0][0] = N·N·k.
//
// # Usage
//
// For one-shot transforms use the package-level function:
//
//	coeffs, err := dct.Transform(samples)
//
// For repeated transforms of the same size, share a basis cache:
//
//	t := dct.NewTransformer(dct.WithCache(dct.NewBasisCache(8)))
//	coeffs, err := t.Transform(samples)
//
// The package intentionally does not implement an inverse or an FFT-based
// fast transform. Cost is O(N³) per call.
package dct
