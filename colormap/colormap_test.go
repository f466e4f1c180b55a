package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/pthm-cable/heatfield/field"
)

func TestMapGradientEndpoints(t *testing.T) {
	testCases := []struct {
		name       string
		value      float64
		r, g, b, a float64
	}{
		{"cold", 0.0, 0, 0, 1, 1},
		{"hot", 1.0, 1, 0, 0, 1},
		{"midpoint", 0.5, 0.5, 0, 0.5, 1},
		{"quarter", 0.25, 0.25, 0, 0.75, 1},
	}

	for _, tc := range testCases {
		r, g, b, a := Map(tc.value)
		if math.Abs(r-tc.r) > 1e-9 || math.Abs(g-tc.g) > 1e-9 ||
			math.Abs(b-tc.b) > 1e-9 || math.Abs(a-tc.a) > 1e-9 {
			t.Errorf("%s: expected (%f, %f, %f, %f), got (%f, %f, %f, %f)",
				tc.name, tc.r, tc.g, tc.b, tc.a, r, g, b, a)
		}
	}
}

func TestMapClampsOutOfRange(t *testing.T) {
	r, _, b, _ := Map(-1.0)
	if r != 0 || b != 1 {
		t.Errorf("expected negative values clamped to blue, got r=%f b=%f", r, b)
	}

	r, _, b, _ = Map(2.0)
	if r != 1 || b != 0 {
		t.Errorf("expected values above 1 clamped to red, got r=%f b=%f", r, b)
	}
}

func TestRGBA(t *testing.T) {
	testCases := []struct {
		value    float64
		expected color.RGBA
	}{
		{0.0, color.RGBA{R: 0, G: 0, B: 255, A: 255}},
		{1.0, color.RGBA{R: 255, G: 0, B: 0, A: 255}},
		{0.5, color.RGBA{R: 128, G: 0, B: 128, A: 255}},
	}

	for _, tc := range testCases {
		got := RGBA(tc.value)
		if got != tc.expected {
			t.Errorf("RGBA(%f): expected %v, got %v", tc.value, tc.expected, got)
		}
	}
}

func TestRenderMatchesGrid(t *testing.T) {
	g := &field.Grid{Width: 2, Height: 1, Data: []float32{0, 1}}

	img := Render(g)

	bounds := img.Bounds()
	if bounds.Dx() != 2 || bounds.Dy() != 1 {
		t.Fatalf("expected 2x1 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	if got := img.RGBAAt(0, 0); got != (color.RGBA{R: 0, G: 0, B: 255, A: 255}) {
		t.Errorf("expected blue at cold cell, got %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{R: 255, G: 0, B: 0, A: 255}) {
		t.Errorf("expected red at hot cell, got %v", got)
	}
}
