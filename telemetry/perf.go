package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one rendered frame.
const (
	PhaseClear = "clear"
	PhaseDraw  = "draw"
	PhaseSwap  = "swap"
	PhasePoll  = "poll"
)

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks frame timing over a rolling window.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string

	// Frame-to-frame interval, includes the vsync wait
	lastFrameEnd  time.Time
	frameInterval time.Duration
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to average over (e.g., 120 for 2 seconds at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 120
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	// End previous phase if any
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := time.Now()
	// End final phase
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	sample := PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}

	p.samples[p.writeIndex] = sample
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}

	if !p.lastFrameEnd.IsZero() {
		p.frameInterval = now.Sub(p.lastFrameEnd)
	}
	p.lastFrameEnd = now
}

// PerfStats holds aggregated frame timing statistics.
type PerfStats struct {
	// In-frame work timing
	AvgFrameDuration time.Duration
	MinFrameDuration time.Duration
	MaxFrameDuration time.Duration

	// Phase breakdown (average durations)
	PhaseAvg map[string]time.Duration

	// Phase percentages of total frame time
	PhasePct map[string]float64

	// Frame-to-frame interval and the rate it implies
	FrameInterval time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	// Interval timing is always available (independent of window samples)
	var fps float64
	if p.frameInterval > 0 {
		fps = float64(time.Second) / float64(p.frameInterval)
	}

	if p.sampleCount == 0 {
		return PerfStats{
			PhaseAvg:      make(map[string]time.Duration),
			PhasePct:      make(map[string]float64),
			FrameInterval: p.frameInterval,
			FPS:           fps,
		}
	}

	var totalFrame time.Duration
	var minFrame, maxFrame time.Duration
	phaseSum := make(map[string]time.Duration)

	// Iterate over valid samples
	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		totalFrame += s.FrameDuration

		if i == 0 || s.FrameDuration < minFrame {
			minFrame = s.FrameDuration
		}
		if s.FrameDuration > maxFrame {
			maxFrame = s.FrameDuration
		}

		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	avgFrame := totalFrame / time.Duration(p.sampleCount)

	// Calculate phase averages and percentages
	phaseAvg := make(map[string]time.Duration)
	phasePct := make(map[string]float64)
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if avgFrame > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avgFrame) * 100
		}
	}

	return PerfStats{
		AvgFrameDuration: avgFrame,
		MinFrameDuration: minFrame,
		MaxFrameDuration: maxFrame,
		PhaseAvg:         phaseAvg,
		PhasePct:         phasePct,
		FrameInterval:    p.frameInterval,
		FPS:              fps,
	}
}

// LogStats logs frame timing statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_frame_us", s.AvgFrameDuration.Microseconds(),
		"min_frame_us", s.MinFrameDuration.Microseconds(),
		"max_frame_us", s.MaxFrameDuration.Microseconds(),
	}

	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}

	// Add phase breakdowns
	phases := []string{PhaseClear, PhaseDraw, PhaseSwap, PhasePoll}

	for _, phase := range phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrameDuration.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrameDuration.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrameDuration.Microseconds()),
	}

	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}

	for phase, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(phase+"_pct", pct))
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of frame timing stats.
type PerfStatsCSV struct {
	WindowEnd  int32   `csv:"window_end"`
	AvgFrameUS int64   `csv:"avg_frame_us"`
	MinFrameUS int64   `csv:"min_frame_us"`
	MaxFrameUS int64   `csv:"max_frame_us"`
	FPS        float64 `csv:"fps"`
	ClearPct   float64 `csv:"clear_pct"`
	DrawPct    float64 `csv:"draw_pct"`
	SwapPct    float64 `csv:"swap_pct"`
	PollPct    float64 `csv:"poll_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:  windowEnd,
		AvgFrameUS: s.AvgFrameDuration.Microseconds(),
		MinFrameUS: s.MinFrameDuration.Microseconds(),
		MaxFrameUS: s.MaxFrameDuration.Microseconds(),
		FPS:        s.FPS,
		ClearPct:   s.PhasePct[PhaseClear],
		DrawPct:    s.PhasePct[PhaseDraw],
		SwapPct:    s.PhasePct[PhaseSwap],
		PollPct:    s.PhasePct[PhasePoll],
	}
}
