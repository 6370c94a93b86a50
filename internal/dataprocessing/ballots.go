package dataprocessing

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

// BallotMerger attaches area identity to each ballot row.
type BallotMerger struct {
	// OverseasMarker tags department codes that are excluded.
	OverseasMarker string
	// CodeWidth is the width department codes are zero-padded to.
	CodeWidth int
}

// NewBallotMerger creates a merger from the ballot configuration.
func NewBallotMerger(cfg config.BallotConfig) *BallotMerger {
	return &BallotMerger{
		OverseasMarker: cfg.OverseasMarker,
		CodeWidth:      cfg.CodeWidth,
	}
}

// MergeReferendumAndAreas merges with the default overseas marker and code
// width.
func MergeReferendumAndAreas(ballots, areas dataframe.DataFrame) (dataframe.DataFrame, error) {
	m := &BallotMerger{
		OverseasMarker: config.DefaultOverseasMarker,
		CodeWidth:      config.DefaultCodeWidth,
	}
	return m.Merge(ballots, areas)
}

// Merge drops overseas rows, pads department codes and inner joins the
// ballots to the area lookup table. The output holds every ballot column
// followed by code_reg, name_reg, code_dep and name_dep.
func (m *BallotMerger) Merge(ballots, areas dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := requireColumns(ballots, "ballots", []string{domain.ColDepartmentCode}); err != nil {
		return dataframe.DataFrame{}, errors.NewProcessingError("merge ballots and areas", err)
	}
	if err := requireColumns(areas, "areas", areaColumns); err != nil {
		return dataframe.DataFrame{}, errors.NewProcessingError("merge ballots and areas", err)
	}

	mainland := ballots
	if m.OverseasMarker != "" {
		mainland = ballots.Filter(dataframe.F{
			Colname:    domain.ColDepartmentCode,
			Comparator: series.CompFunc,
			Comparando: func(el series.Element) bool {
				return !strings.Contains(el.String(), m.OverseasMarker)
			},
		})
	}

	codes := mainland.Col(domain.ColDepartmentCode).Records()
	for i, code := range codes {
		codes[i] = PadCode(code, m.CodeWidth)
	}
	padded := mainland.Copy().Mutate(series.New(codes, series.String, domain.ColDepartmentCode))

	// The join key needs the same name on both sides; code_dep is a copy of
	// the padded department code.
	keyed := padded.Mutate(series.New(codes, series.String, domain.ColCodeDep))
	joined := keyed.InnerJoin(areas, domain.ColCodeDep)

	layout := append(ballotLayout(padded), areaColumns...)
	merged := joined.Select(layout)
	if merged.Err != nil {
		return dataframe.DataFrame{}, errors.NewProcessingError("join ballots and areas", merged.Err)
	}
	return merged, nil
}

// PadCode left-pads code with zeros to width. Codes already width characters
// or wider are returned unchanged.
func PadCode(code string, width int) string {
	if n := len(code); n < width {
		return strings.Repeat("0", width-n) + code
	}
	return code
}

// ballotLayout lists the ballot columns in order, without any area column.
func ballotLayout(df dataframe.DataFrame) []string {
	var names []string
	for _, name := range df.Names() {
		if name != domain.ColCodeDep {
			names = append(names, name)
		}
	}
	return names
}
