// Package svgplot renders benchmark results as a standalone SVG line
// chart comparing empirical and theoretical false-positive rates across
// insertion counts. The output is plain SVG markup with no external
// assets, suitable for dropping into docs or dashboards.
package svgplot

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/forestrie/go-bloomset/benchrun"
)

var ErrNoData = errors.New("svgplot: no results to plot")

// Options controls the chart geometry. Zero values take defaults.
type Options struct {
	Width  int
	Height int
	Title  string
}

const (
	defaultWidth  = 800
	defaultHeight = 480
	defaultTitle  = "Bloom Filter False Positive Rate"

	padLeft   = 70
	padRight  = 20
	padTop    = 20
	padBottom = 60

	colorEmpirical = "#1f77b4"
	colorTheory    = "#ff7f0e"
)

type point struct {
	x, y float64
}

// Render writes the chart for results to w.
func Render(w io.Writer, results []benchrun.Result, opts Options) error {
	if len(results) == 0 {
		return ErrNoData
	}
	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	height := opts.Height
	if height <= 0 {
		height = defaultHeight
	}
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}

	plotW := float64(width - padLeft - padRight)
	plotH := float64(height - padTop - padBottom)

	xmin, xmax := float64(results[0].N), float64(results[0].N)
	ymax := 0.0
	for _, r := range results {
		xmin = min(xmin, float64(r.N))
		xmax = max(xmax, float64(r.N))
		ymax = max(ymax, r.EmpiricalP, r.TheoryP)
	}
	// Headroom above the tallest series; the y axis always starts at 0.
	ymax *= 1.1

	toPx := func(xn, yn float64) point {
		return point{
			x: padLeft + xn*plotW,
			y: padTop + (1.0-yn)*plotH,
		}
	}
	norm := func(v, lo, hi float64) float64 {
		den := hi - lo
		if den == 0 {
			den = 1.0
		}
		return (v - lo) / den
	}

	var empirical, theory []point
	for _, r := range results {
		xn := norm(float64(r.N), xmin, xmax)
		empirical = append(empirical, toPx(xn, norm(r.EmpiricalP, 0, ymax)))
		theory = append(theory, toPx(xn, norm(r.TheoryP, 0, ymax)))
	}

	var b strings.Builder
	fmt.Fprintf(&b,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	b.WriteString(`<rect width="100%" height="100%" fill="#ffffff"/>` + "\n")
	fmt.Fprintf(&b,
		`<text x="%d" y="18" font-size="16" text-anchor="middle" fill="#222">%s</text>`+"\n",
		width/2, title)

	writeGrid(&b, toPx, xmin, xmax, ymax, height)
	writePolyline(&b, empirical, colorEmpirical)
	writePolyline(&b, theory, colorTheory)
	writeAxisLabels(&b, height, plotW, plotH)
	writeLegend(&b, width)

	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func writeGrid(b *strings.Builder, toPx func(xn, yn float64) point, xmin, xmax, ymax float64, height int) {
	const ticks = 5
	for i := 0; i <= ticks; i++ {
		xn := float64(i) / ticks
		lo := toPx(xn, 0.0)
		hi := toPx(xn, 1.0)
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#eee" />`+"\n",
			lo.x, lo.y, hi.x, hi.y)
		val := int(xmin + xn*(xmax-xmin) + 0.5)
		fmt.Fprintf(b, `<text x="%.1f" y="%d" font-size="12" text-anchor="middle" fill="#444">%d</text>`+"\n",
			lo.x, height-20, val)
	}
	for i := 0; i <= ticks; i++ {
		yn := float64(i) / ticks
		lo := toPx(0.0, yn)
		hi := toPx(1.0, yn)
		fmt.Fprintf(b, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#eee" />`+"\n",
			lo.x, lo.y, hi.x, hi.y)
		fmt.Fprintf(b, `<text x="%d" y="%.1f" font-size="12" text-anchor="end" fill="#444">%.3f</text>`+"\n",
			padLeft-8, lo.y+4, yn*ymax)
	}
}

func writePolyline(b *strings.Builder, pts []point, color string) {
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = fmt.Sprintf("%.1f,%.1f", p.x, p.y)
	}
	fmt.Fprintf(b, `<polyline fill="none" stroke="%s" stroke-width="3" points="%s" />`+"\n",
		color, strings.Join(coords, " "))
}

func writeAxisLabels(b *strings.Builder, height int, plotW, plotH float64) {
	fmt.Fprintf(b, `<text x="%.1f" y="%d" font-size="13" text-anchor="middle" fill="#222">n (inserted items)</text>`+"\n",
		padLeft+plotW/2, height-5)
	yMid := padTop + plotH/2
	fmt.Fprintf(b, `<text x="18" y="%.1f" font-size="13" text-anchor="middle" fill="#222" transform="rotate(-90, 18, %.1f)">false positive probability</text>`+"\n",
		yMid, yMid)
}

func writeLegend(b *strings.Builder, width int) {
	x := width - 240
	fmt.Fprintf(b, `<rect x="%d" y="26" width="220" height="44" fill="#fff" stroke="#ddd" />`+"\n", x)
	fmt.Fprintf(b, `<line x1="%d" y1="42" x2="%d" y2="42" stroke="%s" stroke-width="3" />`+"\n", x+20, x+50, colorEmpirical)
	fmt.Fprintf(b, `<text x="%d" y="46" font-size="12" fill="#333">Empirical</text>`+"\n", x+60)
	fmt.Fprintf(b, `<line x1="%d" y1="62" x2="%d" y2="62" stroke="%s" stroke-width="3" />`+"\n", x+20, x+50, colorTheory)
	fmt.Fprintf(b, `<text x="%d" y="66" font-size="12" fill="#333">Theoretical</text>`+"\n", x+60)
}
