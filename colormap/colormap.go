// Package colormap maps scalar values to the blue-red heatmap gradient.
// The mapping mirrors the fragment shader so CPU-side renders match what
// the GPU pipeline produces.
package colormap

import (
	"image"
	"image/color"

	"github.com/pthm-cable/heatfield/field"
)

// Map returns the RGBA components for a value in [0, 1]: blue at 0, red
// at 1, linearly interpolated between. Out-of-range values are clamped.
func Map(value float64) (r, g, b, a float64) {
	v := clamp01(value)
	return v, 0, 1 - v, 1
}

// RGBA converts a scalar value to an 8-bit color for image encoding.
func RGBA(value float64) color.RGBA {
	r, g, b, a := Map(value)
	return color.RGBA{
		R: uint8(r*255 + 0.5),
		G: uint8(g*255 + 0.5),
		B: uint8(b*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Render paints the grid into an image using the gradient, one pixel per
// cell.
func Render(g *field.Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, RGBA(float64(g.At(x, y))))
		}
	}
	return img
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
