package benchrun

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// randomKey returns a printf-style pseudo-random key drawn from rng,
// deterministic for a given seed and call sequence.
func randomKey(rng *rand.Rand, prefix string, i int) []byte {
	return fmt.Appendf(nil, "%s-%d-%d", prefix, i, rng.Int63n(1_000_000_000))
}

// UUIDKeys returns n distinct keys of the form "<prefix>-<uuid>". Unlike
// [randomKey] streams these are not reproducible across runs; they suit
// demos and smoke tests where distinctness matters and determinism does
// not.
func UUIDKeys(prefix string, n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(prefix + "-" + uuid.NewString())
	}
	return keys
}
