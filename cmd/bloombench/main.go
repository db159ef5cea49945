// Command bloombench sweeps bloomset insertion counts and records the
// empirical vs theoretical false-positive rate per n as CSV. With
// -metrics it also serves sweep progress as prometheus gauges and
// counters for the duration of the run.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forestrie/go-bloomset/benchrun"
)

func main() {
	out := flag.String("out", "data/results.csv", "CSV output path")
	seed := flag.Int64("seed", 42, "rng seed")
	minN := flag.Int("min-n", 1000, "minimum n")
	maxN := flag.Int("max-n", 20000, "maximum n (inclusive)")
	step := flag.Int("step", 1000, "step for n")
	probes := flag.Int("probes", 5000, "negative probes per n")
	targetP := flag.Float64("p", 0.01, "target false positive probability")
	metricsAddr := flag.String("metrics", "", "serve prometheus metrics on this address during the sweep")
	flag.Parse()

	cfg := benchrun.SweepConfig{
		MinN:    *minN,
		MaxN:    *maxN,
		Step:    *step,
		Probes:  *probes,
		TargetP: *targetP,
		Seed:    *seed,
		OnResult: func(r benchrun.Result) {
			log.Printf("n=%5d m=%7d k=%2d emp=%.5f theory=%.5f elapsed=%s",
				r.N, r.M, r.K, r.EmpiricalP, r.TheoryP, r.Elapsed)
		},
	}

	if *metricsAddr != "" {
		cfg.Metrics = benchrun.NewMetrics(prometheus.DefaultRegisterer)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("serving metrics on http://%s/metrics", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil {
				log.Printf("metrics server: %v", err)
			}
		}()
	}

	log.Printf("benchmarking bloom filter (seed=%d), writing CSV to %s", *seed, *out)
	results, err := benchrun.Sweep(cfg)
	if err != nil {
		log.Fatal(err)
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal(err)
		}
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := benchrun.WriteResults(f, results); err != nil {
		log.Fatal(err)
	}
	log.Printf("done: %d trials", len(results))
}
