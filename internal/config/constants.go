package config

// Application constants
const (
	AppName    = "referendum-map"
	AppVersion = "1.0.0"

	// EnvPrefix namespaces every environment variable, e.g. REFERENDUM_DATA_DIR.
	EnvPrefix = "REFERENDUM"

	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"
)

// Input file defaults (relative to the data directory)
const (
	DefaultDataDir         = "data"
	DefaultBallotsFile     = "referendum.csv"
	DefaultRegionsFile     = "regions.csv"
	DefaultDepartmentsFile = "departments.csv"
	DefaultShapesFile      = "regions.geojson"

	DefaultBallotsDelimiter   = ";"
	DefaultReferenceDelimiter = ","
	DefaultCharset            = "utf-8"
)

// Ballot handling defaults
const (
	// DefaultOverseasMarker tags department codes of constituencies outside
	// the mainland geometry (ZA, ZB, ..., ZZ for citizens abroad).
	DefaultOverseasMarker = "Z"
	DefaultCodeWidth      = 2
	DefaultChoice         = "Choice A"
	DefaultAltChoice      = "Choice B"
)

// Output defaults (relative to the output directory)
const (
	DefaultOutputDir    = "output"
	DefaultImageFile    = "referendum_map.png"
	DefaultResultsFile  = "referendum_by_region.csv"
	DefaultWorkbookFile = "referendum.xlsx"
	DefaultMetricsFile  = "referendum.prom"
	DefaultTraceFile    = "referendum_trace.json"
)

// Render defaults
const (
	DefaultMapTitle      = "Referendum: share of Choice A"
	DefaultImageWidthPt  = 720
	DefaultImageHeightPt = 600
	DefaultLineWidthPt   = 0.8
	DefaultEdgeGray      = 0.8
)

// Log defaults
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "console"
	DefaultLogFile   = "logs/referendum.log"
)
