package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
)

// FileValidator checks the pipeline's input files and output directory
// before any stage runs.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateInputDirectory validates that the data directory exists
func (v *FileValidator) ValidateInputDirectory(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.logger.Error("Input directory does not exist",
			slog.String("directory", dir))
		return errors.NewDataUnavailableError(dir, fmt.Errorf("input directory %s does not exist", dir))
	}
	if err != nil {
		v.logger.Error("Failed to stat input directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewDataUnavailableError(dir, err)
	}
	if !info.IsDir() {
		v.logger.Error("Input path is not a directory",
			slog.String("path", dir))
		return errors.NewDataUnavailableError(dir, fmt.Errorf("%s is not a directory", dir))
	}
	return nil
}

// ValidateInputs checks every input file and reports all missing ones at
// once, so a user fixing their data directory sees the full list.
func (v *FileValidator) ValidateInputs(inputs []config.InputFile) error {
	var missing []string
	var first error
	for _, in := range inputs {
		if err := v.ValidateFile(in.Path); err != nil {
			missing = append(missing, in.Name)
			if first == nil {
				first = err
			}
		}
	}
	if first == nil {
		v.logger.Info("Input files validated", slog.Int("files", len(inputs)))
		return nil
	}
	return errors.NewDataUnavailableError(fmt.Sprintf("inputs %v", missing), first)
}

// ValidateOutputDirectory checks that dir is an existing, writable directory.
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		v.logger.Error("Output directory is not accessible",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError(fmt.Sprintf("output directory %s is not accessible", dir), err)
	}
	if !info.IsDir() {
		v.logger.Error("Output path is not a directory",
			slog.String("directory", dir))
		return errors.NewStorageError(fmt.Sprintf("output path %s is not a directory", dir), nil)
	}

	// Verify it's writable by creating a test file
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return errors.NewStorageError(fmt.Sprintf("output directory %s is not writable", dir), err)
	}
	file.Close()
	os.Remove(testFile)

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

// ValidateFile checks if a specific file exists and is readable
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		v.logger.Error("File does not exist",
			slog.String("file", path))
		return errors.NewDataUnavailableError(path, fmt.Errorf("file %s does not exist", path))
	}
	if err != nil {
		v.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewDataUnavailableError(path, err)
	}
	if info.IsDir() {
		v.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return errors.NewDataUnavailableError(path, fmt.Errorf("%s is a directory, not a file", path))
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return errors.NewDataUnavailableError(path, fmt.Errorf("file %s is not readable: %w", path, err))
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}
