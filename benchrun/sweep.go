package benchrun

import (
	"fmt"
	"math/rand"

	bloomset "github.com/forestrie/go-bloomset"
)

var (
	ErrBadProbes = fmt.Errorf("%w: probes must be positive", bloomset.ErrInvalidParameter)
	ErrBadRange  = fmt.Errorf("%w: sweep range invalid", bloomset.ErrInvalidParameter)
)

// SweepConfig describes a sweep of trials over insertion counts MinN to
// MaxN inclusive, advancing by Step.
type SweepConfig struct {
	MinN    int
	MaxN    int
	Step    int
	Probes  int
	TargetP float64
	Seed    int64

	// Metrics, when non-nil, receives observations from every trial.
	Metrics *Metrics

	// OnResult, when non-nil, is called after each trial completes.
	OnResult func(Result)
}

// Sweep runs trials for each n in the configured range with a single
// seeded random source, so the whole sweep is reproducible from Seed.
func Sweep(cfg SweepConfig) ([]Result, error) {
	if cfg.MinN <= 0 || cfg.Step <= 0 || cfg.MaxN < cfg.MinN {
		return nil, ErrBadRange
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	var results []Result
	for n := cfg.MinN; n <= cfg.MaxN; n += cfg.Step {
		r, err := Run(Trial{N: n, TargetP: cfg.TargetP, Probes: cfg.Probes}, rng, cfg.Metrics)
		if err != nil {
			return nil, err
		}
		if cfg.OnResult != nil {
			cfg.OnResult(r)
		}
		results = append(results, r)
	}
	return results, nil
}
