package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data      DataConfig      `yaml:"data" envconfig:"DATA"`
	Ballot    BallotConfig    `yaml:"ballot" envconfig:"BALLOT"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Render    RenderConfig    `yaml:"render" envconfig:"RENDER"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// DataConfig locates the static input tables
type DataConfig struct {
	Dir                string `yaml:"dir" envconfig:"DIR" validate:"required"`
	BallotsFile        string `yaml:"ballots_file" envconfig:"BALLOTS_FILE" validate:"required"`
	RegionsFile        string `yaml:"regions_file" envconfig:"REGIONS_FILE" validate:"required"`
	DepartmentsFile    string `yaml:"departments_file" envconfig:"DEPARTMENTS_FILE" validate:"required"`
	ShapesFile         string `yaml:"shapes_file" envconfig:"SHAPES_FILE" validate:"required"`
	BallotsDelimiter   string `yaml:"ballots_delimiter" envconfig:"BALLOTS_DELIMITER" validate:"required,len=1"`
	ReferenceDelimiter string `yaml:"reference_delimiter" envconfig:"REFERENCE_DELIMITER" validate:"required,len=1"`
	Charset            string `yaml:"charset" envconfig:"CHARSET" validate:"oneof=utf-8 latin1 windows-1252"`
}

// BallotConfig controls ballot filtering and the ratio definition
type BallotConfig struct {
	OverseasMarker string   `yaml:"overseas_marker" envconfig:"OVERSEAS_MARKER" validate:"required"`
	CodeWidth      int      `yaml:"code_width" envconfig:"CODE_WIDTH" validate:"gt=0"`
	Choice         string   `yaml:"choice" envconfig:"CHOICE" validate:"required"`
	Expressed      []string `yaml:"expressed" envconfig:"EXPRESSED" validate:"min=1,dive,required"`
}

// OutputConfig lists the artefacts written by a run
type OutputConfig struct {
	Dir           string `yaml:"dir" envconfig:"DIR" validate:"required"`
	ImageFile     string `yaml:"image_file" envconfig:"IMAGE_FILE" validate:"required"`
	ResultsFile   string `yaml:"results_file" envconfig:"RESULTS_FILE"`
	WorkbookFile  string `yaml:"workbook_file" envconfig:"WORKBOOK_FILE"`
	Render        bool   `yaml:"render" envconfig:"RENDER"`
	WriteCSV      bool   `yaml:"write_csv" envconfig:"WRITE_CSV"`
	WriteWorkbook bool   `yaml:"write_workbook" envconfig:"WRITE_WORKBOOK"`
	CSVBOM        bool   `yaml:"csv_bom" envconfig:"CSV_BOM"`
}

// RenderConfig styles the choropleth
type RenderConfig struct {
	Title     string  `yaml:"title" envconfig:"TITLE"`
	WidthPt   float64 `yaml:"width_pt" envconfig:"WIDTH_PT" validate:"gt=0"`
	HeightPt  float64 `yaml:"height_pt" envconfig:"HEIGHT_PT" validate:"gt=0"`
	LineWidth float64 `yaml:"line_width" envconfig:"LINE_WIDTH" validate:"gte=0"`
	EdgeGray  float64 `yaml:"edge_gray" envconfig:"EDGE_GRAY" validate:"gte=0,lte=1"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// TelemetryConfig toggles the tracing and metrics files
type TelemetryConfig struct {
	EnableTracing bool   `yaml:"enable_tracing" envconfig:"ENABLE_TRACING"`
	EnableMetrics bool   `yaml:"enable_metrics" envconfig:"ENABLE_METRICS"`
	TraceFile     string `yaml:"trace_file" envconfig:"TRACE_FILE"`
	MetricsFile   string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load builds the configuration: defaults, then the YAML file (explicit path
// or the first well-known location found), then REFERENDUM_* environment
// variables (optionally seeded from a .env file). Every failure is a CONFIG
// AppError.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("load config file %s", configFile), err)
		}
	}

	// Variables already set in the process environment win over .env.
	if FileExists(DotEnvFile) {
		if err := godotenv.Load(DotEnvFile); err != nil {
			return nil, errors.NewConfigError(fmt.Sprintf("load %s", DotEnvFile), err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, errors.NewConfigError("load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.NewConfigError("config validation failed", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg; keys absent from the file
// keep their current values.
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}

	if err := validator.New().Struct(c); err != nil {
		return err
	}

	if !slices.Contains(c.Ballot.Expressed, c.Ballot.Choice) {
		return fmt.Errorf("ballot choice %q must be one of the expressed choices %v",
			c.Ballot.Choice, c.Ballot.Expressed)
	}

	if c.Telemetry.EnableTracing && c.Telemetry.TraceFile == "" {
		return fmt.Errorf("tracing enabled without a trace file")
	}
	if c.Telemetry.EnableMetrics && c.Telemetry.MetricsFile == "" {
		return fmt.Errorf("metrics enabled without a metrics file")
	}

	return nil
}

// Validate runs the same checks as Load on a programmatically built config.
func (c *Config) Validate() error {
	return c.validate()
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	locations := []string{
		"referendum.yaml",
		"configs/referendum.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return ""
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir:                DefaultDataDir,
			BallotsFile:        DefaultBallotsFile,
			RegionsFile:        DefaultRegionsFile,
			DepartmentsFile:    DefaultDepartmentsFile,
			ShapesFile:         DefaultShapesFile,
			BallotsDelimiter:   DefaultBallotsDelimiter,
			ReferenceDelimiter: DefaultReferenceDelimiter,
			Charset:            DefaultCharset,
		},
		Ballot: BallotConfig{
			OverseasMarker: DefaultOverseasMarker,
			CodeWidth:      DefaultCodeWidth,
			Choice:         DefaultChoice,
			Expressed:      []string{DefaultChoice, DefaultAltChoice},
		},
		Output: OutputConfig{
			Dir:           DefaultOutputDir,
			ImageFile:     DefaultImageFile,
			ResultsFile:   DefaultResultsFile,
			WorkbookFile:  DefaultWorkbookFile,
			Render:        true,
			WriteCSV:      true,
			WriteWorkbook: false,
			CSVBOM:        false,
		},
		Render: RenderConfig{
			Title:     DefaultMapTitle,
			WidthPt:   DefaultImageWidthPt,
			HeightPt:  DefaultImageHeightPt,
			LineWidth: DefaultLineWidthPt,
			EdgeGray:  DefaultEdgeGray,
		},
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFile,
		},
		Telemetry: TelemetryConfig{
			TraceFile:   DefaultTraceFile,
			MetricsFile: DefaultMetricsFile,
		},
	}
}
