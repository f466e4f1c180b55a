package app

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/heatfield/colormap"
	"github.com/pthm-cable/heatfield/config"
	"github.com/pthm-cable/heatfield/field"
	"github.com/pthm-cable/heatfield/telemetry"
)

// RunHeadless generates and measures the field without a window. The
// gradient render goes to a PNG when a snapshot path is set, and telemetry
// goes to the output dir when one is set.
func RunHeadless(opts Options) error {
	cfg := config.Cfg()

	slog.Info("starting headless render",
		"width", cfg.Field.Width,
		"height", cfg.Field.Height,
		"scale", cfg.Field.Scale,
	)

	genStart := time.Now()
	grid := field.Generate(cfg.Field.Width, cfg.Field.Height, cfg.Field.Scale)
	stats := field.Measure(grid)
	slog.Info("field generated",
		"elapsed_us", time.Since(genStart).Microseconds(),
		"stats", stats,
	)

	if opts.SnapshotPath != "" {
		if err := writeSnapshot(opts.SnapshotPath, grid); err != nil {
			return err
		}
		slog.Info("snapshot written",
			"path", opts.SnapshotPath,
			"width", grid.Width,
			"height", grid.Height,
		)
	}

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output: %w", err)
	}
	if err := out.WriteConfig(cfg); err != nil {
		return fmt.Errorf("writing config snapshot: %w", err)
	}

	row := telemetry.FieldStatsRow{
		Width:  cfg.Field.Width,
		Height: cfg.Field.Height,
		Scale:  cfg.Field.Scale,
		Min:    stats.Min,
		Max:    stats.Max,
		Mean:   stats.Mean,
		StdDev: stats.StdDev,
	}
	if err := out.WriteFieldStats(row); err != nil {
		return fmt.Errorf("writing field stats: %w", err)
	}

	return out.Close()
}

// writeSnapshot renders the grid through the gradient and encodes it as PNG.
func writeSnapshot(path string, grid *field.Grid) error {
	img := colormap.Render(grid)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}
