// Package app wires the scalar field, GPU pipeline, and telemetry into a
// runnable heatmap.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pthm-cable/heatfield/config"
	"github.com/pthm-cable/heatfield/field"
	"github.com/pthm-cable/heatfield/renderer"
	"github.com/pthm-cable/heatfield/telemetry"
)

// Options holds the per-run settings collected from CLI flags.
type Options struct {
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	SnapshotPath   string
	MaxFrames      int
}

// App holds the render state for one graphical run.
type App struct {
	win  *glfw.Window
	cfg  *config.Config
	opts Options

	heatmap *renderer.Heatmap
	perf    *telemetry.PerfCollector
	out     *telemetry.OutputManager

	fieldStats   field.Stats
	frame        int
	lastStatsLog time.Time
}

// New builds the complete scene for the current GL context: the field is
// generated, measured, and uploaded, and the shader pipeline is compiled.
// The CPU-side grid is dropped once the texture holds it.
func New(win *glfw.Window, opts Options) (*App, error) {
	cfg := config.Cfg()

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("initializing output: %w", err)
	}
	if err := out.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	genStart := time.Now()
	grid := field.Generate(cfg.Field.Width, cfg.Field.Height, cfg.Field.Scale)
	stats := field.Measure(grid)
	slog.Info("field generated",
		"width", cfg.Field.Width,
		"height", cfg.Field.Height,
		"scale", cfg.Field.Scale,
		"elapsed_us", time.Since(genStart).Microseconds(),
		"stats", stats,
	)

	gpuStart := time.Now()
	heatmap := renderer.NewHeatmap(grid, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	slog.Info("gpu resources ready",
		"elapsed_us", time.Since(gpuStart).Microseconds(),
		"pipeline_linked", heatmap.Ready(),
	)

	if opts.StatsWindowSec <= 0 {
		opts.StatsWindowSec = cfg.Telemetry.StatsWindow
	}

	return &App{
		win:          win,
		cfg:          cfg,
		opts:         opts,
		heatmap:      heatmap,
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		out:          out,
		fieldStats:   stats,
		lastStatsLog: time.Now(),
	}, nil
}

// Update advances frame bookkeeping: the frame counter, the optional frame
// cutoff, and the periodic stats window.
func (a *App) Update() {
	a.frame++

	if a.opts.MaxFrames > 0 && a.frame >= a.opts.MaxFrames {
		a.win.SetShouldClose(true)
	}

	if time.Since(a.lastStatsLog).Seconds() < a.opts.StatsWindowSec {
		return
	}
	a.lastStatsLog = time.Now()

	stats := a.perf.Stats()
	if a.opts.LogStats {
		stats.LogStats()
	}
	if err := a.out.WritePerf(stats, int32(a.frame)); err != nil {
		slog.Error("failed to write perf stats", "error", err)
	}
}

// Draw renders one frame and presents it: clear, draw the textured quad,
// swap buffers, poll events.
func (a *App) Draw() {
	a.perf.StartFrame()

	a.perf.StartPhase(telemetry.PhaseClear)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	a.perf.StartPhase(telemetry.PhaseDraw)
	a.heatmap.Draw()

	a.perf.StartPhase(telemetry.PhaseSwap)
	a.win.SwapBuffers()

	a.perf.StartPhase(telemetry.PhasePoll)
	glfw.PollEvents()

	a.perf.EndFrame()
}

// Unload releases GPU resources and flushes run output.
func (a *App) Unload() {
	a.heatmap.Unload()

	if err := a.out.WriteFieldStats(a.fieldStatsRow()); err != nil {
		slog.Error("failed to write field stats", "error", err)
	}
	if err := a.out.Close(); err != nil {
		slog.Error("failed to close outputs", "error", err)
	}

	slog.Info("shutdown complete", "frames", a.frame)
}

func (a *App) fieldStatsRow() telemetry.FieldStatsRow {
	return telemetry.FieldStatsRow{
		Width:  a.cfg.Field.Width,
		Height: a.cfg.Field.Height,
		Scale:  a.cfg.Field.Scale,
		Min:    a.fieldStats.Min,
		Max:    a.fieldStats.Max,
		Mean:   a.fieldStats.Mean,
		StdDev: a.fieldStats.StdDev,
	}
}
