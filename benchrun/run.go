package benchrun

import (
	"math/rand"
	"time"

	"github.com/cespare/xxhash/v2"

	bloomset "github.com/forestrie/go-bloomset"
)

// Trial describes a single measurement: insert N keys into a filter sized
// for (N, TargetP), then probe Probes keys known not to be inserted.
type Trial struct {
	N       int
	TargetP float64
	Probes  int
}

// Result is the outcome of one trial.
type Result struct {
	N          int
	M          int
	K          int
	FalsePos   int
	Probes     int
	EmpiricalP float64
	TheoryP    float64
	Elapsed    time.Duration
}

// Run executes one trial. rng supplies the key randomness; passing a
// seeded source makes the run reproducible. A non-nil metrics receives
// per-trial observations.
func Run(trial Trial, rng *rand.Rand, metrics *Metrics) (Result, error) {
	if trial.Probes <= 0 {
		return Result{}, ErrBadProbes
	}
	m, err := bloomset.SizeFor(trial.N, trial.TargetP)
	if err != nil {
		return Result{}, err
	}
	k := bloomset.OptimalNumHashes(m, trial.N)
	f, err := bloomset.New(m, k)
	if err != nil {
		return Result{}, err
	}

	start := time.Now()

	inserted := make(map[uint64]struct{}, trial.N)
	for i := 0; i < trial.N; i++ {
		key := randomKey(rng, "val", i)
		inserted[xxhash.Sum64(key)] = struct{}{}
		f.Add(key)
	}

	falsePos := 0
	for i := 0; i < trial.Probes; i++ {
		key := randomKey(rng, "probe", i)
		if _, hit := inserted[xxhash.Sum64(key)]; hit {
			continue
		}
		if f.Contains(key) {
			falsePos++
		}
	}

	r := Result{
		N:          trial.N,
		M:          m,
		K:          k,
		FalsePos:   falsePos,
		Probes:     trial.Probes,
		EmpiricalP: float64(falsePos) / float64(trial.Probes),
		TheoryP:    f.EstimatedFalsePositiveRateFor(trial.N),
		Elapsed:    time.Since(start),
	}
	if metrics != nil {
		metrics.ObserveTrial(r, f.BitDensity())
	}
	return r, nil
}
