package dataprocessing

import (
	"fmt"
	"math"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

// Native column names of the reference tables.
const (
	colID         = "id"
	colCode       = "code"
	colName       = "name"
	colSlug       = "slug"
	colRegionCode = "region_code"
)

var (
	// ballotColumns are required in the ballot table besides the choices.
	ballotColumns = []string{
		domain.ColDepartmentCode,
		domain.ColDepartmentName,
		domain.ColTownCode,
		domain.ColTownName,
		domain.ColRegistered,
		domain.ColAbstentions,
		domain.ColNull,
	}

	regionColumns     = []string{colID, colCode, colName, colSlug}
	departmentColumns = []string{colID, colRegionCode, colCode, colName, colSlug}

	// areaColumns is the exact layout of the area lookup table.
	areaColumns = []string{
		domain.ColCodeReg,
		domain.ColNameReg,
		domain.ColCodeDep,
		domain.ColNameDep,
	}

	// locationColumns are removed before aggregating by region.
	locationColumns = []string{
		domain.ColCodeDep,
		domain.ColNameDep,
		domain.ColTownCode,
		domain.ColTownName,
		domain.ColCodeReg,
		domain.ColDepartmentCode,
		domain.ColDepartmentName,
	}

	// countColumns lead every aggregated row, before the choice columns.
	countColumns = []string{
		domain.ColRegistered,
		domain.ColAbstentions,
		domain.ColNull,
	}
)

// Codes and names are read as text so "01" keeps its leading zero.
var (
	ballotTypes = map[string]series.Type{
		domain.ColDepartmentCode: series.String,
		domain.ColDepartmentName: series.String,
		domain.ColTownCode:       series.String,
		domain.ColTownName:       series.String,
	}
	regionTypes = map[string]series.Type{
		colCode: series.String,
		colName: series.String,
		colSlug: series.String,
	}
	departmentTypes = map[string]series.Type{
		colRegionCode: series.String,
		colCode:       series.String,
		colName:       series.String,
		colSlug:       series.String,
	}
)

// missingColumns returns the names in required that df does not have.
func missingColumns(df dataframe.DataFrame, required []string) []string {
	names := df.Names()
	var missing []string
	for _, name := range required {
		if !slices.Contains(names, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// requireColumns fails when df lacks any of the required columns.
func requireColumns(df dataframe.DataFrame, table string, required []string) error {
	if df.Err != nil {
		return fmt.Errorf("%s table: %w", table, df.Err)
	}
	if missing := missingColumns(df, required); len(missing) > 0 {
		return fmt.Errorf("%s table is missing columns %v", table, missing)
	}
	return nil
}

// isNumeric reports whether s holds counts that can be summed.
func isNumeric(s series.Series) bool {
	return s.Type() == series.Int || s.Type() == series.Float
}

// int64Values returns the column as whole numbers. Float columns are
// truncated; NaN cells count as zero.
func int64Values(s series.Series) []int64 {
	out := make([]int64, s.Len())
	if s.Type() == series.Int {
		for i := 0; i < s.Len(); i++ {
			elem := s.Elem(i)
			if elem.IsNA() {
				continue
			}
			v, err := elem.Int()
			if err == nil {
				out[i] = int64(v)
			}
		}
		return out
	}
	for i, v := range s.Float() {
		if !math.IsNaN(v) {
			out[i] = int64(v)
		}
	}
	return out
}
