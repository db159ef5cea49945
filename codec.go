package bloomset

// ToBytes serializes the filter to the fixed little-endian layout
// described in the package documentation. The insertion counter is not
// part of the wire format.
func (f *Filter) ToBytes() []byte {
	out := make([]byte, uint64(HeaderBytes)+BitsetBytes(f.numBits))
	copy(out[0:4], Magic)
	out[4] = Version
	writeU64LE(out[5:13], f.numBits)
	writeU64LE(out[13:21], f.numHashes)
	copy(out[HeaderBytes:], f.bits)
	return out
}

// FromBytes reconstructs a filter from a payload produced by
// [Filter.ToBytes]. The reconstructed filter has the same numBits,
// numHashes and bit contents, and a zero insertion counter.
func FromBytes(payload []byte) (*Filter, error) {
	if len(payload) < HeaderBytes {
		return nil, ErrBadPayloadSize
	}
	if string(payload[0:4]) != Magic {
		return nil, ErrBadMagic
	}
	if payload[4] != Version {
		return nil, ErrBadVersion
	}
	m := readU64LE(payload[5:13])
	k := readU64LE(payload[13:21])
	if m == 0 {
		return nil, ErrBadNumBits
	}
	if k == 0 {
		return nil, ErrBadNumHashes
	}
	if uint64(len(payload)) != uint64(HeaderBytes)+BitsetBytes(m) {
		return nil, ErrBadPayloadSize
	}
	f := &Filter{
		numBits:   m,
		numHashes: k,
		bits:      make([]byte, BitsetBytes(m)),
	}
	copy(f.bits, payload[HeaderBytes:])
	return f, nil
}
