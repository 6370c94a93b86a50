package dataprocessing

import (
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/require"
)

// newFrame builds a frame from records (header first) with typed columns.
func newFrame(t *testing.T, types map[string]series.Type, records [][]string) dataframe.DataFrame {
	t.Helper()
	df := dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.WithTypes(types),
	)
	require.NoError(t, df.Err)
	return df
}

func regionsFrame(t *testing.T) dataframe.DataFrame {
	return newFrame(t, regionTypes, [][]string{
		{"id", "code", "name", "slug"},
		{"1", "01", "Alpha", "alpha"},
		{"2", "02", "Beta", "beta"},
		{"3", "03", "Gamma", "gamma"},
	})
}

func departmentsFrame(t *testing.T) dataframe.DataFrame {
	return newFrame(t, departmentTypes, [][]string{
		{"id", "region_code", "code", "name", "slug"},
		{"1", "01", "01", "Dep One", "dep-one"},
		{"2", "01", "02", "Dep Two", "dep-two"},
		{"3", "02", "03", "Dep Three", "dep-three"},
		{"4", "02", "04", "Dep Four", "dep-four"},
		{"5", "03", "05", "Dep Five", "dep-five"},
		{"6", "03", "06", "Dep Six", "dep-six"},
	})
}

var ballotHeader = []string{
	"Department code", "Department name", "Town code", "Town name",
	"Registered", "Abstentions", "Null", "Choice A", "Choice B",
}

func ballotsFrame(t *testing.T, rows ...[]string) dataframe.DataFrame {
	return newFrame(t, ballotTypes, append([][]string{ballotHeader}, rows...))
}
