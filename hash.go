package bloomset

import "crypto/sha256"

// hashPair derives the two 64-bit double-hashing bases for key.
//
// A single SHA-256 digest amortizes the hash cost across all k index
// derivations. h1 and h2 are read little-endian from non-overlapping byte
// ranges of the digest, and h2 is forced odd to reduce degenerate cycling
// of the index sequence.
func hashPair(key []byte) (h1, h2 uint64) {
	sum := sha256.Sum256(key)
	h1 = readU64LE(sum[0:8])
	h2 = readU64LE(sum[8:16])
	if h2&1 == 0 {
		h2++
	}
	return h1, h2
}
