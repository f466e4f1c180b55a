// Heatmap preview tool - renders the scalar field to a PNG without a GL context.
//
// Usage: go run ./cmd/heatpreview -scale 30 -out preview.png
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/pthm-cable/heatfield/colormap"
	"github.com/pthm-cable/heatfield/field"
)

func main() {
	width := flag.Int("width", 256, "Field width in cells")
	height := flag.Int("height", 256, "Field height in cells")
	scale := flag.Float64("scale", 30.0, "Radial frequency of the pattern")
	outPath := flag.String("out", "preview.png", "Output PNG path")
	flag.Parse()

	grid := field.Generate(*width, *height, *scale)
	stats := field.Measure(grid)
	fmt.Printf("Min: %.3f  Max: %.3f  Mean: %.3f  StdDev: %.3f\n",
		stats.Min, stats.Max, stats.Mean, stats.StdDev)

	img := colormap.Render(grid)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", *outPath, err)
		os.Exit(1)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		fmt.Fprintf(os.Stderr, "Failed to encode image: %v\n", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Heatmap rendered to: %s (%dx%d)\n", *outPath, *width, *height)
}
