package field

import (
	"math"
	"testing"
)

func TestMeasureKnownGrid(t *testing.T) {
	g := &Grid{Width: 2, Height: 2, Data: []float32{0, 0, 1, 1}}

	s := Measure(g)

	if s.Min != 0 {
		t.Errorf("expected min 0, got %f", s.Min)
	}
	if s.Max != 1 {
		t.Errorf("expected max 1, got %f", s.Max)
	}
	if math.Abs(s.Mean-0.5) > 1e-9 {
		t.Errorf("expected mean 0.5, got %f", s.Mean)
	}

	// Sample standard deviation of {0, 0, 1, 1} is sqrt(1/3).
	expectedStd := math.Sqrt(1.0 / 3.0)
	if math.Abs(s.StdDev-expectedStd) > 1e-9 {
		t.Errorf("expected std dev %f, got %f", expectedStd, s.StdDev)
	}
}

func TestMeasureGeneratedField(t *testing.T) {
	g := Generate(64, 64, 30.0)

	s := Measure(g)

	if s.Min < 0 || s.Min > 1 {
		t.Errorf("min out of range: %f", s.Min)
	}
	if s.Max < 0 || s.Max > 1 {
		t.Errorf("max out of range: %f", s.Max)
	}
	if s.Max <= s.Min {
		t.Errorf("expected spread in ring pattern, got min %f max %f", s.Min, s.Max)
	}
	if s.Mean <= 0 || s.Mean >= 1 {
		t.Errorf("mean out of range: %f", s.Mean)
	}
}

func TestMeasureEmptyGrid(t *testing.T) {
	g := &Grid{Width: 0, Height: 0, Data: nil}

	s := Measure(g)

	if s.Min != 0 || s.Max != 0 || s.Mean != 0 || s.StdDev != 0 {
		t.Errorf("expected zero stats for empty grid, got %+v", s)
	}
}
