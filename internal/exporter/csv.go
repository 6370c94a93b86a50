package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"

	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
)

// CSVWriter provides CSV export functionality
type CSVWriter struct {
	logger    *slog.Logger
	outputDir string
}

// NewCSVWriter creates a new CSV writer. Bare file names are placed in
// outputDir.
func NewCSVWriter(logger *slog.Logger, outputDir string) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger, outputDir: outputDir}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCSV writes data to a CSV file with the given options
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	w.logger.Info("Writing CSV file",
		slog.String("file_path", filePath),
		slog.String("full_path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return errors.NewStorageError("create output directory", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return errors.NewStorageError(fmt.Sprintf("open %s", fullPath), err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return file.Close()
}

// WriteFrame writes df with its column names as header.
func (w *CSVWriter) WriteFrame(filePath string, df dataframe.DataFrame, bom bool) error {
	if df.Err != nil {
		return errors.NewProcessingError("export frame", df.Err)
	}
	records := df.Records()
	return w.WriteCSV(filePath, WriteOptions{
		Headers:   records[0],
		Records:   records[1:],
		BOMPrefix: bom,
	})
}

// resolvePath places bare file names in the output directory; anything with
// a directory component is used as given.
func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) || w.outputDir == "" {
		return filePath
	}
	if filepath.Dir(filePath) == "." {
		return filepath.Join(w.outputDir, filePath)
	}
	return filePath
}
