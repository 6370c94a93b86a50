package dataprocessing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
)

// Dataset holds the three raw tables of a run.
type Dataset struct {
	Ballots     dataframe.DataFrame
	Regions     dataframe.DataFrame
	Departments dataframe.DataFrame
}

// Loader reads the static input tables.
type Loader struct {
	logger  *slog.Logger
	paths   *config.Paths
	data    config.DataConfig
	choices []string
}

// NewLoader creates a loader for the files resolved in paths. choices are the
// answer columns the ballot table must carry.
func NewLoader(logger *slog.Logger, paths *config.Paths, data config.DataConfig, choices []string) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		logger:  logger,
		paths:   paths,
		data:    data,
		choices: choices,
	}
}

// Load reads the ballot, region and department tables. Any missing,
// unreadable or malformed source yields an error matching
// errors.ErrDataUnavailable.
func (l *Loader) Load(ctx context.Context) (Dataset, error) {
	ballotDelim, err := delimiter(l.data.BallotsDelimiter)
	if err != nil {
		return Dataset{}, errors.NewDataUnavailableError("ballots", err)
	}
	refDelim, err := delimiter(l.data.ReferenceDelimiter)
	if err != nil {
		return Dataset{}, errors.NewDataUnavailableError("regions", err)
	}

	required := append(append([]string{}, ballotColumns...), l.choices...)

	ballots, err := l.LoadTable(ctx, "ballots", l.paths.BallotsCSV, ballotDelim, required, ballotTypes)
	if err != nil {
		return Dataset{}, err
	}
	regions, err := l.LoadTable(ctx, "regions", l.paths.RegionsCSV, refDelim, regionColumns, regionTypes)
	if err != nil {
		return Dataset{}, err
	}
	departments, err := l.LoadTable(ctx, "departments", l.paths.DepartmentsCSV, refDelim, departmentColumns, departmentTypes)
	if err != nil {
		return Dataset{}, err
	}

	return Dataset{
		Ballots:     ballots,
		Regions:     regions,
		Departments: departments,
	}, nil
}

// LoadTable reads one delimited table with a header row and checks that the
// required columns are present.
func (l *Loader) LoadTable(ctx context.Context, name, path string, delim rune, required []string, types map[string]series.Type) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, errors.NewDataUnavailableError(name, err).
			WithContext("path", path)
	}
	defer file.Close()

	reader, err := decodeReader(file, l.data.Charset)
	if err != nil {
		return dataframe.DataFrame{}, errors.NewDataUnavailableError(name, err).
			WithContext("path", path)
	}

	df := dataframe.ReadCSV(reader,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithTypes(types),
	)
	if err := requireColumns(df, name, required); err != nil {
		return dataframe.DataFrame{}, errors.NewDataUnavailableError(name, err).
			WithContext("path", path)
	}

	l.logger.InfoContext(ctx, "table loaded",
		slog.String("table", name),
		slog.String("path", path),
		slog.Int("rows", df.Nrow()),
		slog.Int("columns", df.Ncol()))

	return df, nil
}

// decodeReader converts the source charset to UTF-8 and normalizes text to
// NFC so accented names compare equal across files.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	var decoder transform.Transformer
	switch strings.ToLower(charset) {
	case "", "utf-8", "utf8":
		decoder = unicode.BOMOverride(unicode.UTF8.NewDecoder())
	case "latin1", "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	case "windows-1252", "cp1252":
		decoder = charmap.Windows1252.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return transform.NewReader(r, transform.Chain(decoder, norm.NFC)), nil
}

func delimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
