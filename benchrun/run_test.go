package benchrun

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	bloomset "github.com/forestrie/go-bloomset"
)

func TestRunTrial(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	r, err := Run(Trial{N: 1000, TargetP: 0.01, Probes: 2000}, rng, nil)
	require.NoError(t, err)

	require.Equal(t, 1000, r.N)
	require.Equal(t, 9586, r.M)
	require.Equal(t, 7, r.K)
	require.Equal(t, 2000, r.Probes)
	require.InDelta(t, 0.01, r.TheoryP, 0.005)
	require.Less(t, math.Abs(r.EmpiricalP-r.TheoryP), math.Max(0.01, r.TheoryP*0.5))
	require.Greater(t, r.Elapsed.Nanoseconds(), int64(0))
}

func TestRunIsReproducible(t *testing.T) {
	trial := Trial{N: 500, TargetP: 0.02, Probes: 1000}

	a, err := Run(trial, rand.New(rand.NewSource(7)), nil)
	require.NoError(t, err)
	b, err := Run(trial, rand.New(rand.NewSource(7)), nil)
	require.NoError(t, err)

	a.Elapsed, b.Elapsed = 0, 0
	require.Equal(t, a, b)
}

func TestRunRejectsBadInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := Run(Trial{N: 100, TargetP: 0.01, Probes: 0}, rng, nil)
	require.ErrorIs(t, err, ErrBadProbes)
	require.ErrorIs(t, err, bloomset.ErrInvalidParameter)

	_, err = Run(Trial{N: 0, TargetP: 0.01, Probes: 100}, rng, nil)
	require.ErrorIs(t, err, bloomset.ErrInvalidParameter)

	_, err = Run(Trial{N: 100, TargetP: 1.5, Probes: 100}, rng, nil)
	require.ErrorIs(t, err, bloomset.ErrInvalidParameter)
}

func TestSweep(t *testing.T) {
	var seen []int
	cfg := SweepConfig{
		MinN:    500,
		MaxN:    1500,
		Step:    500,
		Probes:  500,
		TargetP: 0.02,
		Seed:    42,
		OnResult: func(r Result) {
			seen = append(seen, r.N)
		},
	}

	results, err := Sweep(cfg)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, []int{500, 1000, 1500}, seen)

	// m grows with n at a fixed target rate.
	require.Greater(t, results[1].M, results[0].M)
	require.Greater(t, results[2].M, results[1].M)
}

func TestSweepRejectsBadRange(t *testing.T) {
	for _, cfg := range []SweepConfig{
		{MinN: 0, MaxN: 100, Step: 10, Probes: 10, TargetP: 0.01},
		{MinN: 100, MaxN: 10, Step: 10, Probes: 10, TargetP: 0.01},
		{MinN: 10, MaxN: 100, Step: 0, Probes: 10, TargetP: 0.01},
	} {
		_, err := Sweep(cfg)
		require.ErrorIs(t, err, ErrBadRange)
	}
}
