package dataprocessing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
)

func TestPadCode(t *testing.T) {
	tests := []struct {
		code  string
		width int
		want  string
	}{
		{"1", 2, "01"},
		{"01", 2, "01"},
		{"2A", 2, "2A"},
		{"974", 2, "974"},
		{"", 2, "00"},
		{"7", 3, "007"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, PadCode(tt.code, tt.width))
		})
	}
}

func TestMergeReferendumAndAreas(t *testing.T) {
	areas, err := MergeRegionsAndDepartments(regionsFrame(t), departmentsFrame(t))
	require.NoError(t, err)

	ballots := ballotsFrame(t,
		[]string{"1", "Dep One", "001", "Town A", "100", "10", "5", "40", "45"},
		[]string{"01", "Dep One", "002", "Town B", "200", "20", "10", "80", "90"},
		[]string{"3", "Dep Three", "001", "Town C", "50", "5", "0", "20", "25"},
		[]string{"ZA", "Overseas A", "001", "Town Z", "70", "7", "3", "30", "30"},
		[]string{"ZZ", "Abroad", "001", "Town Y", "90", "9", "1", "40", "40"},
		[]string{"77", "Unknown", "001", "Town X", "10", "1", "0", "4", "5"},
	)

	merged, err := MergeReferendumAndAreas(ballots, areas)
	require.NoError(t, err)

	assert.Equal(t, append(append([]string{}, ballotHeader...),
		"code_reg", "name_reg", "code_dep", "name_dep"), merged.Names())
	assert.Equal(t, 3, merged.Nrow())
	assert.Equal(t, []string{"01", "01", "03"}, merged.Col("Department code").Records())
	assert.Equal(t, []string{"01", "01", "03"}, merged.Col("code_dep").Records())
	assert.Equal(t, []string{"Alpha", "Alpha", "Beta"}, merged.Col("name_reg").Records())

	// The raw ballot table keeps its codes.
	assert.Equal(t, "1", ballots.Col("Department code").Records()[0])
	assert.Equal(t, 6, ballots.Nrow())
}

func TestBallotMerger_PaddingIdempotent(t *testing.T) {
	areas, err := MergeRegionsAndDepartments(regionsFrame(t), departmentsFrame(t))
	require.NoError(t, err)

	short, err := MergeReferendumAndAreas(ballotsFrame(t,
		[]string{"1", "Dep One", "001", "Town A", "100", "10", "5", "40", "45"}), areas)
	require.NoError(t, err)
	padded, err := MergeReferendumAndAreas(ballotsFrame(t,
		[]string{"01", "Dep One", "001", "Town A", "100", "10", "5", "40", "45"}), areas)
	require.NoError(t, err)

	assert.Equal(t, padded.Records(), short.Records())
}

func TestBallotMerger_OverseasMarker(t *testing.T) {
	areas, err := MergeRegionsAndDepartments(regionsFrame(t), departmentsFrame(t))
	require.NoError(t, err)

	ballots := ballotsFrame(t,
		[]string{"02", "Dep Two", "001", "Town A", "100", "10", "5", "40", "45"},
		[]string{"X1", "Elsewhere", "001", "Town B", "100", "10", "5", "40", "45"},
		[]string{"ZA", "Overseas", "001", "Town C", "100", "10", "5", "40", "45"},
	)

	tests := []struct {
		name   string
		marker string
		absent string
	}{
		{name: "default marker", marker: "Z", absent: "Z"},
		{name: "custom marker", marker: "X", absent: "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merger := NewBallotMerger(config.BallotConfig{OverseasMarker: tt.marker, CodeWidth: 2})
			merged, err := merger.Merge(ballots, areas)
			require.NoError(t, err)

			for _, code := range merged.Col("Department code").Records() {
				assert.False(t, strings.Contains(code, tt.absent), "code %s should be filtered", code)
			}
			assert.Equal(t, 1, merged.Nrow())
		})
	}
}
