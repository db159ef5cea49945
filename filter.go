package bloomset

// Filter is a Bloom filter backed by a packed byte slice and double
// hashing. m (numBits) and k (numHashes) are fixed at construction; bits
// only ever transition 0 to 1 and there is no removal operation.
//
// The zero Filter is not usable; construct with [New] or [FromBytes].
type Filter struct {
	numBits   uint64
	numHashes uint64
	bits      []byte
	count     uint64
}

// New returns an empty filter with numBits addressable bit positions and
// numHashes index derivations per key.
func New(numBits, numHashes int) (*Filter, error) {
	if numBits <= 0 {
		return nil, ErrBadNumBits
	}
	if numHashes <= 0 {
		return nil, ErrBadNumHashes
	}
	m := uint64(numBits)
	return &Filter{
		numBits:   m,
		numHashes: uint64(numHashes),
		bits:      make([]byte, BitsetBytes(m)),
	}, nil
}

// NumBits returns m, the total addressable bit positions.
func (f *Filter) NumBits() uint64 { return f.numBits }

// NumHashes returns k, the number of index derivations per key.
func (f *Filter) NumHashes() uint64 { return f.numHashes }

// Count returns the number of Add calls performed on this filter.
// Duplicate insertions increment it; it is not a distinct-element count
// and does not survive serialization.
func (f *Filter) Count() uint64 { return f.count }

// Add inserts key. It cannot fail for a constructed filter.
func (f *Filter) Add(key []byte) {
	h1, h2 := hashPair(key)
	for i := uint64(0); i < f.numHashes; i++ {
		f.setBit((h1 + i*h2) % f.numBits)
	}
	f.count++
}

// Contains reports whether key is possibly a member. A false return is
// definitive: key was never added. A true return may be a false positive
// caused by bit collisions from other keys.
func (f *Filter) Contains(key []byte) bool {
	h1, h2 := hashPair(key)
	for i := uint64(0); i < f.numHashes; i++ {
		if !f.getBit((h1 + i*h2) % f.numBits) {
			return false
		}
	}
	return true
}

// InsertMany adds each key in sequence. Bit setting is idempotent and
// commutative, so the final bit state is order independent.
func (f *Filter) InsertMany(keys [][]byte) {
	for _, key := range keys {
		f.Add(key)
	}
}
