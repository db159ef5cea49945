// Package benchrun drives empirical false-positive measurements against
// bloomset filters.
//
// A Trial sizes a filter for n expected items at a target rate, inserts n
// pseudo-random keys, then probes keys known not to be inserted and counts
// how many the filter wrongly reports as present. Sweep repeats this over
// a range of n so the empirical rate can be compared with the analytic
// estimate. Results serialize to CSV with the column contract consumed by
// the svgplot package.
//
// Inserted keys are tracked as 64-bit xxhash values rather than retained
// strings, so the truth set stays compact for large n. An xxhash collision
// between a probe and an inserted key causes that probe to be skipped; the
// effect on the measured rate is negligible at these scales.
package benchrun
