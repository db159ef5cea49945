package benchrun

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomKeyDeterministic(t *testing.T) {
	a := randomKey(rand.New(rand.NewSource(9)), "val", 0)
	b := randomKey(rand.New(rand.NewSource(9)), "val", 0)
	require.Equal(t, a, b)

	c := randomKey(rand.New(rand.NewSource(10)), "val", 0)
	require.NotEqual(t, a, c)
}

func TestUUIDKeysDistinct(t *testing.T) {
	keys := UUIDKeys("demo", 200)
	require.Len(t, keys, 200)

	seen := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		require.Greater(t, len(key), len("demo-"))
		seen[string(key)] = struct{}{}
	}
	require.Len(t, seen, 200)
}
