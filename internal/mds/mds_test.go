package mds

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(9)
	b := Generate(9)
	require.Equal(t, a, b)
	require.Equal(t, 9, a.Width())
	require.Len(t, a.coeffs, 81)
}

func TestCauchyEntries(t *testing.T) {
	width := 5
	m := Generate(width)
	for i := 0; i < width; i++ {
		for j := 0; j < width; j++ {
			// entry(i,j) * (i + width + j) == 1
			var d, prod fr.Element
			d.SetUint64(uint64(i + width + j))
			prod.Mul(&m.coeffs[i*width+j], &d)
			require.True(t, prod.IsOne(), "entry (%d,%d) is not 1/(x_i+y_j)", i, j)
		}
	}
}

func TestMulVectorBasis(t *testing.T) {
	width := 4
	m := Generate(width)
	for j := 0; j < width; j++ {
		vec := make([]fr.Element, width)
		vec[j].SetOne()
		out := m.MulVector(vec)
		require.Len(t, out, width)
		for i := 0; i < width; i++ {
			require.True(t, out[i].Equal(&m.coeffs[i*width+j]))
		}
	}
}

func TestMulVectorShorterThanWidth(t *testing.T) {
	m := Generate(4)
	vec := make([]fr.Element, 2)
	vec[0].SetUint64(3)
	vec[1].SetUint64(7)
	out := m.MulVector(vec)
	require.Len(t, out, 2)

	// Matches the leading 2x2 submatrix multiply done by hand.
	for i := 0; i < 2; i++ {
		var want, prod fr.Element
		prod.Mul(&m.coeffs[i*4], &vec[0])
		want.Add(&want, &prod)
		prod.Mul(&m.coeffs[i*4+1], &vec[1])
		want.Add(&want, &prod)
		require.True(t, out[i].Equal(&want))
	}
}
