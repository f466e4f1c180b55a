package field

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the value distribution of a generated field.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Measure computes distribution statistics over the grid. A well formed
// field keeps Min and Max inside [0, 1]; anything outside points at a
// generator regression.
func Measure(g *Grid) Stats {
	if len(g.Data) == 0 {
		return Stats{}
	}

	vals := make([]float64, len(g.Data))
	for i, v := range g.Data {
		vals[i] = float64(v)
	}

	mean, std := stat.MeanStdDev(vals, nil)
	return Stats{
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   mean,
		StdDev: std,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
		slog.Float64("mean", s.Mean),
		slog.Float64("std_dev", s.StdDev),
	)
}
