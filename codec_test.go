package bloomset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildFilter(t *testing.T, n int, p float64) *Filter {
	t.Helper()
	m, err := SizeFor(n, p)
	require.NoError(t, err)
	f, err := New(m, OptimalNumHashes(m, n))
	require.NoError(t, err)
	for i := range n {
		f.Add(fmt.Appendf(nil, "val-%d", i))
	}
	return f
}

func TestRoundTrip(t *testing.T) {
	f := buildFilter(t, 500, 0.05)
	payload := f.ToBytes()
	require.Len(t, payload, int(uint64(HeaderBytes)+BitsetBytes(f.NumBits())))

	g, err := FromBytes(payload)
	require.NoError(t, err)
	require.Equal(t, f.NumBits(), g.NumBits())
	require.Equal(t, f.NumHashes(), g.NumHashes())
	require.Equal(t, f.bits, g.bits)

	// The counter is usage telemetry, not structural state.
	require.Equal(t, uint64(500), f.Count())
	require.Equal(t, uint64(0), g.Count())

	// Membership is preserved byte for byte.
	for i := range 500 {
		require.True(t, g.Contains(fmt.Appendf(nil, "val-%d", i)))
	}
	require.Equal(t, f.BitDensity(), g.BitDensity())
}

func TestRoundTripEmptyFilter(t *testing.T) {
	f, err := New(77, 3)
	require.NoError(t, err)

	g, err := FromBytes(f.ToBytes())
	require.NoError(t, err)
	require.Equal(t, uint64(77), g.NumBits())
	require.Equal(t, uint64(3), g.NumHashes())
	require.False(t, g.Contains([]byte("anything")))
}

func TestFromBytesRejectsCorruptPayloads(t *testing.T) {
	f := buildFilter(t, 100, 0.05)
	good := f.ToBytes()

	mutate := func(fn func(p []byte) []byte) []byte {
		p := append([]byte(nil), good...)
		return fn(p)
	}

	for _, tc := range []struct {
		name    string
		payload []byte
		want    error
	}{
		{
			"bad magic",
			mutate(func(p []byte) []byte { p[0] = 'X'; return p }),
			ErrBadMagic,
		},
		{
			"bad version",
			mutate(func(p []byte) []byte { p[4] = 2; return p }),
			ErrBadVersion,
		},
		{
			"truncated bits",
			mutate(func(p []byte) []byte { return p[:len(p)-1] }),
			ErrBadPayloadSize,
		},
		{
			"extended bits",
			mutate(func(p []byte) []byte { return append(p, 0) }),
			ErrBadPayloadSize,
		},
		{
			"short header",
			good[:HeaderBytes-1],
			ErrBadPayloadSize,
		},
		{
			"empty payload",
			nil,
			ErrBadPayloadSize,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g, err := FromBytes(tc.payload)
			require.Nil(t, g)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ErrCorruptData)
		})
	}
}

func TestFromBytesRejectsZeroParameters(t *testing.T) {
	f := buildFilter(t, 100, 0.05)

	zeroBits := f.ToBytes()
	writeU64LE(zeroBits[5:13], 0)
	_, err := FromBytes(zeroBits)
	require.ErrorIs(t, err, ErrBadNumBits)

	zeroHashes := f.ToBytes()
	writeU64LE(zeroHashes[13:21], 0)
	_, err = FromBytes(zeroHashes)
	require.ErrorIs(t, err, ErrBadNumHashes)
}
