// Package mds generates the maximum-distance-separable mixing matrix used by
// the Hades linear layer and implements its vector multiply, both on native
// field elements and on circuit variables.
package mds

import (
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/gnark/frontend"
)

// Matrix is a width×width MDS matrix over the scalar field, stored row-major.
type Matrix struct {
	width  int
	coeffs []fr.Element
}

// Generate builds the Cauchy matrix with entries 1/(x_i + y_j), x_i = i,
// y_j = width + j. The 2*width sequence points are pairwise distinct and far
// below the field order, so every denominator is invertible and the matrix is
// maximum distance separable.
func Generate(width int) Matrix {
	coeffs := make([]fr.Element, width*width)
	for i := 0; i < width; i++ {
		for j := 0; j < width; j++ {
			var d fr.Element
			d.SetUint64(uint64(i + width + j))
			coeffs[i*width+j].Inverse(&d)
		}
	}
	return Matrix{width: width, coeffs: coeffs}
}

// Width returns the matrix dimension.
func (m Matrix) Width() int { return m.width }

// MulVector multiplies the leading len(vec)×len(vec) submatrix by vec.
// The permutation feeds it word vectors no longer than the width.
func (m Matrix) MulVector(vec []fr.Element) []fr.Element {
	out := make([]fr.Element, len(vec))
	for i := range out {
		row := m.coeffs[i*m.width:]
		var sum fr.Element
		for j := range vec {
			var prod fr.Element
			prod.Mul(&row[j], &vec[j])
			sum.Add(&sum, &prod)
		}
		out[i] = sum
	}
	return out
}

// ConstrainMulVector is MulVector over linear combinations. Matrix entries
// are constants, so the whole transform folds into the combinations without
// allocating gates.
func (m Matrix) ConstrainMulVector(api frontend.API, words []frontend.Variable) []frontend.Variable {
	out := make([]frontend.Variable, len(words))
	for i := range out {
		row := m.coeffs[i*m.width:]
		sum := api.Mul(words[0], row[0])
		for j := 1; j < len(words); j++ {
			sum = api.Add(sum, api.Mul(words[j], row[j]))
		}
		out[i] = sum
	}
	return out
}
