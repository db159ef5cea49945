// Command bloomset is a small utility around the bloomset library: a
// quick demo of sizing and measured false-positive behaviour, plus
// writing and inspecting serialized filter files.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"

	bloomset "github.com/forestrie/go-bloomset"
	"github.com/forestrie/go-bloomset/benchrun"
	"github.com/forestrie/go-bloomset/snapshot"
)

func main() {
	demo := flag.Bool("demo", false, "run a quick demo")
	serialize := flag.String("serialize", "", "write a serialized filter to PATH")
	deserialize := flag.String("deserialize", "", "read a serialized filter from PATH and print a summary")
	compress := flag.Bool("compress", false, "zstd-compress the serialized filter")
	seed := flag.Int64("seed", 42, "rng seed for the demo")
	flag.Parse()

	switch {
	case *demo:
		if err := runDemo(*seed); err != nil {
			log.Fatal(err)
		}
	case *serialize != "":
		if err := writeFilter(*serialize, *compress); err != nil {
			log.Fatal(err)
		}
	case *deserialize != "":
		if err := summarizeFilter(*deserialize); err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Println("No action specified. Use -demo, -serialize PATH, or -deserialize PATH.")
	}
}

func runDemo(seed int64) error {
	fmt.Println("Bloom filter demo")
	n := 1000
	targetP := 0.01
	m, err := bloomset.SizeFor(n, targetP)
	if err != nil {
		return err
	}
	k := bloomset.OptimalNumHashes(m, n)
	fmt.Printf("Configured for n=%d, target_p=%g -> m=%d, k=%d\n", n, targetP, m, k)

	f, err := bloomset.New(m, k)
	if err != nil {
		return err
	}
	f.InsertMany(benchrun.UUIDKeys("item", n))
	fmt.Printf("Inserted %d items.\n", n)
	fmt.Printf("Estimated p=%.4f, bit density=%.3f\n",
		f.EstimatedFalsePositiveRate(), f.BitDensity())

	r, err := benchrun.Run(
		benchrun.Trial{N: n, TargetP: targetP, Probes: 5000},
		rand.New(rand.NewSource(seed)), nil)
	if err != nil {
		return err
	}
	fmt.Printf("Empirical false positive rate over %d probes: %.4f\n", r.Probes, r.EmpiricalP)
	return nil
}

func writeFilter(path string, compress bool) error {
	n := 200
	targetP := 0.02
	m, err := bloomset.SizeFor(n, targetP)
	if err != nil {
		return err
	}
	k := bloomset.OptimalNumHashes(m, n)
	f, err := bloomset.New(m, k)
	if err != nil {
		return err
	}
	for i := range n {
		f.Add(fmt.Appendf(nil, "value-%d", i))
	}
	if err := snapshot.Save(path, f, compress); err != nil {
		return err
	}
	fmt.Printf("Wrote filter to %s (m=%d, k=%d, compressed=%v)\n", path, m, k, compress)
	return nil
}

func summarizeFilter(path string) error {
	f, err := snapshot.Load(path)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded filter (m=%d, k=%d)\n", f.NumBits(), f.NumHashes())
	fmt.Printf("Bit density: %.3f\n", f.BitDensity())
	return nil
}
