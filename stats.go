package bloomset

import "math"

// EstimatedFalsePositiveRate returns the theoretical false-positive
// probability for the insertions performed so far, using [Filter.Count]
// as n. See [Filter.EstimatedFalsePositiveRateFor].
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return f.EstimatedFalsePositiveRateFor(int(f.count))
}

// EstimatedFalsePositiveRateFor returns p ~= (1 - e^(-k*n/m))^k for an
// explicit n inserted items. This is the analytic estimate, not a
// measurement of the current bit contents. Returns 0 for n <= 0.
func (f *Filter) EstimatedFalsePositiveRateFor(n int) float64 {
	if n <= 0 {
		return 0.0
	}
	m := float64(f.numBits)
	k := float64(f.numHashes)
	return math.Pow(1.0-math.Exp(-k*float64(n)/m), k)
}
