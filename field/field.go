// Package field generates the scalar field visualized by the heatmap.
package field

import "math"

// Grid holds a row-major scalar field with values in [0, 1].
type Grid struct {
	Width  int
	Height int
	Data   []float32
}

// Value returns the radial sine sample at normalized coordinates (nx, ny).
// The value is the sine of the distance from the center (0.5, 0.5), scaled
// by the frequency and remapped from [-1, 1] to [0, 1].
func Value(nx, ny, scale float64) float64 {
	dx := nx - 0.5
	dy := ny - 0.5
	dist := math.Sqrt(dx*dx + dy*dy)
	return (math.Sin(scale*dist) + 1) / 2
}

// Generate produces a width x height grid of ring patterns radiating from
// the center. Cell coordinates are normalized by the full grid size, so the
// center cell of a 256x256 grid lands exactly on (0.5, 0.5). Deterministic
// for identical inputs.
func Generate(width, height int, scale float64) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height),
	}

	for y := 0; y < height; y++ {
		ny := float64(y) / float64(height)
		for x := 0; x < width; x++ {
			nx := float64(x) / float64(width)
			g.Data[y*width+x] = float32(Value(nx, ny, scale))
		}
	}

	return g
}

// At returns the value at cell (x, y).
func (g *Grid) At(x, y int) float32 {
	return g.Data[y*g.Width+x]
}
