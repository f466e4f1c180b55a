package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/heatfield/config"
)

// FieldStatsRow is a flat struct for CSV export of field statistics.
type FieldStatsRow struct {
	Width  int     `csv:"width"`
	Height int     `csv:"height"`
	Scale  float64 `csv:"scale"`
	Min    float64 `csv:"min"`
	Max    float64 `csv:"max"`
	Mean   float64 `csv:"mean"`
	StdDev float64 `csv:"std_dev"`
}

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir       string
	perfFile  *os.File
	fieldFile *os.File

	// Track if headers have been written
	perfHeaderWritten  bool
	fieldHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	// Create output directory
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	// Open perf.csv
	perfPath := filepath.Join(dir, "perf.csv")
	f, err := os.Create(perfPath)
	if err != nil {
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	// Open field_stats.csv
	fieldPath := filepath.Join(dir, "field_stats.csv")
	f, err = os.Create(fieldPath)
	if err != nil {
		om.perfFile.Close()
		return nil, fmt.Errorf("creating field_stats.csv: %w", err)
	}
	om.fieldFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WritePerf writes a frame timing record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, windowEnd int32) error {
	if om == nil {
		return nil
	}

	csvRecord := stats.ToCSV(windowEnd)
	records := []PerfStatsCSV{csvRecord}

	if !om.perfHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		// Subsequent writes skip headers
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// WriteFieldStats writes a field statistics record to field_stats.csv.
func (om *OutputManager) WriteFieldStats(row FieldStatsRow) error {
	if om == nil {
		return nil
	}

	records := []FieldStatsRow{row}

	if !om.fieldHeaderWritten {
		if err := gocsv.Marshal(records, om.fieldFile); err != nil {
			return fmt.Errorf("writing field stats: %w", err)
		}
		om.fieldHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.fieldFile); err != nil {
			return fmt.Errorf("writing field stats: %w", err)
		}
	}

	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error

	if om.perfFile != nil {
		if err := om.perfFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if om.fieldFile != nil {
		if err := om.fieldFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
