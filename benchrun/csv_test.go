package benchrun

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func sampleResults() []Result {
	return []Result{
		{N: 1000, M: 9586, K: 7, FalsePos: 18, Probes: 5000, EmpiricalP: 0.0036, TheoryP: 0.010028, Elapsed: 125 * time.Millisecond},
		{N: 2000, M: 19171, K: 7, FalsePos: 44, Probes: 5000, EmpiricalP: 0.0088, TheoryP: 0.010025, Elapsed: 250 * time.Millisecond},
	}
}

func TestResultsCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, sampleResults()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "n,m,k,false_pos,probes,empirical_p,theory_p,elapsed_s", lines[0])

	got, err := ReadResults(&buf)
	require.NoError(t, err)
	require.Equal(t, sampleResults(), got)
}

func TestReadResultsRejectsBadInput(t *testing.T) {
	for name, in := range map[string]string{
		"empty":         "",
		"wrong header":  "a,b,c\n1,2,3\n",
		"missing field": "n,m,k,false_pos,probes,empirical_p,theory_p\n",
		"bad number":    "n,m,k,false_pos,probes,empirical_p,theory_p,elapsed_s\nx,1,1,0,10,0,0,0\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadResults(strings.NewReader(in))
			require.Error(t, err)
		})
	}
}
