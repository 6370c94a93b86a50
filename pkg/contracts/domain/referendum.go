// Package domain holds the typed rows exchanged between the pipeline stages
// and the exporters.
package domain

import (
	"math"

	"github.com/twpayne/go-geom"
)

// Column names of the ballot table and of the area lookup table.
const (
	ColDepartmentCode = "Department code"
	ColDepartmentName = "Department name"
	ColTownCode       = "Town code"
	ColTownName       = "Town name"
	ColRegistered     = "Registered"
	ColAbstentions    = "Abstentions"
	ColNull           = "Null"

	ColCodeReg = "code_reg"
	ColNameReg = "name_reg"
	ColCodeDep = "code_dep"
	ColNameDep = "name_dep"

	ColRatio = "ratio"
)

// ChoiceCount is the number of votes cast for one answer choice.
type ChoiceCount struct {
	Name  string `json:"name"`
	Votes int64  `json:"votes"`
}

// RegionTally is one row of the aggregated-by-region table.
type RegionTally struct {
	Name        string        `json:"name_reg"`
	Registered  int64         `json:"registered"`
	Abstentions int64         `json:"abstentions"`
	Null        int64         `json:"null"`
	Choices     []ChoiceCount `json:"choices"`
}

// Votes returns the count for choice and whether the tally has that column.
func (t RegionTally) Votes(choice string) (int64, bool) {
	for _, c := range t.Choices {
		if c.Name == choice {
			return c.Votes, true
		}
	}
	return 0, false
}

// Sum adds the counts of the named choices. Unknown names count as zero.
func (t RegionTally) Sum(choices []string) int64 {
	var total int64
	for _, name := range choices {
		v, _ := t.Votes(name)
		total += v
	}
	return total
}

// MapRow is an aggregated region joined with its boundary and the derived
// ratio. Ratio is NaN when no expressed vote was cast.
type MapRow struct {
	RegionTally
	Geometry geom.T  `json:"-"`
	Ratio    float64 `json:"ratio"`
}

// HasRatio reports whether Ratio is defined.
func (r MapRow) HasRatio() bool {
	return !math.IsNaN(r.Ratio)
}
