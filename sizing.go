package bloomset

import "math"

// SizeFor returns the bit count m = ceil(-n * ln(p) / (ln 2)^2) for an
// expected n inserted items at target false-positive probability p.
func SizeFor(expectedItems int, targetFalsePositive float64) (int, error) {
	if expectedItems <= 0 {
		return 0, ErrBadExpectedItems
	}
	if !(targetFalsePositive > 0 && targetFalsePositive < 1) {
		return 0, ErrBadTargetRate
	}
	m := -float64(expectedItems) * math.Log(targetFalsePositive) / (math.Ln2 * math.Ln2)
	return int(math.Ceil(m)), nil
}

// OptimalNumHashes returns k = round((m/n) * ln 2), clamped to at least 1.
//
// For expectedItems <= 0 there is no meaningful optimum, but a filter must
// still have k >= 1, so 1 is returned rather than an error.
func OptimalNumHashes(numBits, expectedItems int) int {
	if expectedItems <= 0 {
		return 1
	}
	k := int(math.Round(float64(numBits) / float64(expectedItems) * math.Ln2))
	if k < 1 {
		return 1
	}
	return k
}
