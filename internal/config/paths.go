package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Paths contains every file the pipeline reads or writes.
// This is the single source of truth for file locations in the application.
type Paths struct {
	DataDir   string
	OutputDir string
	LogsDir   string

	// Inputs
	BallotsCSV     string
	RegionsCSV     string
	DepartmentsCSV string
	ShapesGeoJSON  string

	// Outputs
	MapImage    string
	ResultsCSV  string
	Workbook    string
	MetricsFile string
	TraceFile   string
}

// InputFile names one of the static sources read by the loader.
type InputFile struct {
	Name string
	Path string
}

// ResolvePaths derives every input and output path from the configuration.
// Relative directories are kept relative to the working directory; relative
// telemetry files are placed in the output directory.
func (c *Config) ResolvePaths() *Paths {
	dataDir := filepath.Clean(c.Data.Dir)
	outDir := filepath.Clean(c.Output.Dir)

	outputPath := func(name string) string {
		if name == "" {
			return ""
		}
		if filepath.IsAbs(name) {
			return name
		}
		return filepath.Join(outDir, name)
	}

	return &Paths{
		DataDir:   dataDir,
		OutputDir: outDir,
		LogsDir:   filepath.Dir(c.Logging.FilePath),

		BallotsCSV:     filepath.Join(dataDir, c.Data.BallotsFile),
		RegionsCSV:     filepath.Join(dataDir, c.Data.RegionsFile),
		DepartmentsCSV: filepath.Join(dataDir, c.Data.DepartmentsFile),
		ShapesGeoJSON:  filepath.Join(dataDir, c.Data.ShapesFile),

		MapImage:    outputPath(c.Output.ImageFile),
		ResultsCSV:  outputPath(c.Output.ResultsFile),
		Workbook:    outputPath(c.Output.WorkbookFile),
		MetricsFile: outputPath(c.Telemetry.MetricsFile),
		TraceFile:   outputPath(c.Telemetry.TraceFile),
	}
}

// Inputs lists the input files in load order.
func (p *Paths) Inputs() []InputFile {
	return []InputFile{
		{Name: "ballots", Path: p.BallotsCSV},
		{Name: "regions", Path: p.RegionsCSV},
		{Name: "departments", Path: p.DepartmentsCSV},
		{Name: "shapes", Path: p.ShapesGeoJSON},
	}
}

// EnsureDirectories creates the output directory if it doesn't exist.
// The data directory is never created: inputs are read-only.
func (p *Paths) EnsureDirectories() error {
	if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", p.OutputDir, err)
	}
	slog.Debug("Ensured directory exists", slog.String("directory", p.OutputDir))
	return nil
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// LogPathResolution logs detailed path resolution information for debugging
func (p *Paths) LogPathResolution(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Debug("Path resolution summary",
		slog.Group("directories",
			slog.String("data", p.DataDir),
			slog.String("output", p.OutputDir),
			slog.String("logs", p.LogsDir),
		),
		slog.Group("inputs",
			slog.String("ballots", p.BallotsCSV),
			slog.String("regions", p.RegionsCSV),
			slog.String("departments", p.DepartmentsCSV),
			slog.String("shapes", p.ShapesGeoJSON),
		),
		slog.Group("outputs",
			slog.String("map_image", p.MapImage),
			slog.String("results_csv", p.ResultsCSV),
			slog.String("workbook", p.Workbook),
		))
}
