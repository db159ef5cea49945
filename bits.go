package bloomset

import "math/bits"

// BitsetBytes returns ceil(mBits/8).
func BitsetBytes(mBits uint64) uint64 {
	return (mBits + 7) / 8
}

func (f *Filter) setBit(i uint64) {
	f.bits[i>>3] |= 1 << uint8(i&7)
}

func (f *Filter) getBit(i uint64) bool {
	return f.bits[i>>3]&(1<<uint8(i&7)) != 0
}

// BitDensity returns the fraction of bits set to 1. Diagnostic only; the
// membership operations never consult it.
func (f *Filter) BitDensity() float64 {
	ones := 0
	for _, b := range f.bits {
		ones += bits.OnesCount8(b)
	}
	return float64(ones) / float64(f.numBits)
}
