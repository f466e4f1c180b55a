package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/pthm-cable/heatfield/app"
	"github.com/pthm-cable/heatfield/config"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	snapshot := flag.String("snapshot", "", "PNG path for the headless field render (headless only)")
	logStats := flag.Bool("log-stats", false, "Output frame stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	maxFrames := flag.Int("max-frames", 0, "Close after N frames (0 = until window close)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON for structured logging, on stderr where the
	// pipeline diagnostics also go)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// Use config stats window if not overridden by CLI
	statsWindowSec := cfg.Telemetry.StatsWindow
	if *statsWindow > 0 {
		statsWindowSec = *statsWindow
	}

	opts := app.Options{
		LogStats:       *logStats,
		StatsWindowSec: statsWindowSec,
		OutputDir:      *outputDir,
		SnapshotPath:   *snapshot,
		MaxFrames:      *maxFrames,
	}

	if *headless {
		// Headless mode - pure CPU render, no GL context needed
		if err := app.RunHeadless(opts); err != nil {
			slog.Error("headless render failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Graphical mode
	if err := glfw.Init(); err != nil {
		slog.Error("failed to initialize glfw", "error", err)
		os.Exit(1)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.Title, nil, nil)
	if err != nil {
		slog.Error("failed to create window", "error", err)
		glfw.Terminate()
		os.Exit(1)
	}
	win.MakeContextCurrent()
	if cfg.Screen.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		slog.Error("failed to initialize opengl", "error", err)
		glfw.Terminate()
		os.Exit(1)
	}

	a, err := app.New(win, opts)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		glfw.Terminate()
		os.Exit(1)
	}

	for !win.ShouldClose() {
		a.Update()
		a.Draw()
	}

	a.Unload()
	glfw.Terminate()
}
