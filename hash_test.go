package bloomset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPairDeterministic(t *testing.T) {
	key := []byte("some key")
	h1a, h2a := hashPair(key)
	h1b, h2b := hashPair(key)
	require.Equal(t, h1a, h1b)
	require.Equal(t, h2a, h2b)

	// Distinct keys should not share both bases.
	h1c, h2c := hashPair([]byte("some other key"))
	require.False(t, h1a == h1c && h2a == h2c)
}

func TestHashPairStepIsOdd(t *testing.T) {
	for i := range 1000 {
		_, h2 := hashPair(fmt.Appendf(nil, "key-%d", i))
		require.Equal(t, uint64(1), h2&1)
	}
}

func TestIndicesStayInRange(t *testing.T) {
	// Small odd m exercises the modulus on every derivation.
	f, err := New(13, 9)
	require.NoError(t, err)

	for i := range 500 {
		key := fmt.Appendf(nil, "k%d", i)
		h1, h2 := hashPair(key)
		for j := uint64(0); j < f.numHashes; j++ {
			idx := (h1 + j*h2) % f.numBits
			require.Less(t, idx, f.numBits)
		}
		f.Add(key)
		require.True(t, f.Contains(key))
	}
}
