// Command bloomplot renders a bloombench results CSV to an SVG line
// chart of empirical vs theoretical false-positive rates.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/forestrie/go-bloomset/benchrun"
	"github.com/forestrie/go-bloomset/svgplot"
)

func main() {
	csvPath := flag.String("csv", "data/results.csv", "input CSV path")
	out := flag.String("out", "plots/false_positive.svg", "output SVG path")
	width := flag.Int("w", 0, "chart width (0 for default)")
	height := flag.Int("h", 0, "chart height (0 for default)")
	title := flag.String("title", "", "chart title (empty for default)")
	flag.Parse()

	in, err := os.Open(*csvPath)
	if err != nil {
		log.Fatal(err)
	}
	results, err := benchrun.ReadResults(in)
	in.Close()
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

	opts := svgplot.Options{Width: *width, Height: *height, Title: *title}
	if err := svgplot.Render(f, results, opts); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}
