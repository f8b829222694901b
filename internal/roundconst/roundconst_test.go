package roundconst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSize(t *testing.T) {
	cases := []struct {
		fullRounds, partialRounds, width int
	}{
		{8, 59, 9},
		{0, 1, 3},
		{2, 0, 1},
		{0, 0, 9},
	}
	for _, tc := range cases {
		constants := Generate(tc.fullRounds, tc.partialRounds, tc.width)
		require.Len(t, constants, tc.width*(tc.fullRounds+tc.partialRounds))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(8, 59, 9)
	b := Generate(8, 59, 9)
	require.Equal(t, a, b)

	// Any parameter change yields a different table.
	c := Generate(8, 59, 8)
	require.NotEqual(t, a[:len(c)], c)
}

func TestIteratorExhaustion(t *testing.T) {
	constants := Generate(2, 1, 3)
	it := constants.Iter()
	for i := 0; i < len(constants); i++ {
		c, ok := it.Next()
		require.True(t, ok)
		require.True(t, c.Equal(&constants[i]))
	}
	_, ok := it.Next()
	require.False(t, ok)
	// Exhaustion is sticky.
	_, ok = it.Next()
	require.False(t, ok)
}

func TestIteratorsAreIndependent(t *testing.T) {
	constants := Generate(2, 1, 3)
	it1 := constants.Iter()
	it2 := constants.Iter()
	a, _ := it1.Next()
	b, _ := it2.Next()
	require.True(t, a.Equal(&b))
}
