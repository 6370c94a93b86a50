package dataprocessing

import (
	"slices"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

// ComputeResultByRegion drops the location columns of the merged table and
// sums every remaining numeric column per region name. Rows come out sorted
// by name_reg; name_reg is the first column. Rows without a region name
// belong to no group.
func ComputeResultByRegion(merged dataframe.DataFrame) (dataframe.DataFrame, error) {
	if err := requireColumns(merged, "merged", append([]string{domain.ColNameReg}, locationColumns...)); err != nil {
		return dataframe.DataFrame{}, errors.NewProcessingError("aggregate by region", err)
	}

	reduced := merged.Drop(locationColumns)
	if reduced.Err != nil {
		return dataframe.DataFrame{}, errors.NewProcessingError("aggregate by region", reduced.Err)
	}

	keyCol := reduced.Col(domain.ColNameReg)
	keys := keyCol.Records()
	missing := keyCol.IsNaN()
	for i, k := range keys {
		if k == "" {
			missing[i] = true
		}
	}

	seen := make(map[string]bool)
	names := make([]string, 0)
	for i, k := range keys {
		if missing[i] {
			continue
		}
		if !seen[k] {
			seen[k] = true
			names = append(names, k)
		}
	}
	sort.Strings(names)
	groups := make(map[string]int, len(names))
	for i, name := range names {
		groups[name] = i
	}

	columns := []series.Series{series.New(names, series.String, domain.ColNameReg)}
	for _, colName := range reduced.Names() {
		if colName == domain.ColNameReg {
			continue
		}
		col := reduced.Col(colName)
		if !isNumeric(col) {
			continue
		}
		sums := make([]int, len(names))
		for row, v := range int64Values(col) {
			if missing[row] {
				continue
			}
			sums[groups[keys[row]]] += int(v)
		}
		columns = append(columns, series.New(sums, series.Int, colName))
	}

	result := dataframe.New(columns...)
	if result.Err != nil {
		return dataframe.DataFrame{}, errors.NewProcessingError("aggregate by region", result.Err)
	}
	return result, nil
}

// Tallies converts an aggregated frame into typed rows. Numeric columns other
// than Registered, Abstentions and Null are read as answer choices, in column
// order.
func Tallies(frame dataframe.DataFrame) ([]domain.RegionTally, error) {
	if err := requireColumns(frame, "aggregated", append([]string{domain.ColNameReg}, countColumns...)); err != nil {
		return nil, errors.NewProcessingError("read region tallies", err)
	}

	names := frame.Col(domain.ColNameReg).Records()
	registered := int64Values(frame.Col(domain.ColRegistered))
	abstentions := int64Values(frame.Col(domain.ColAbstentions))
	nulls := int64Values(frame.Col(domain.ColNull))

	type choiceColumn struct {
		name   string
		values []int64
	}
	var choices []choiceColumn
	for _, colName := range frame.Names() {
		if colName == domain.ColNameReg || slices.Contains(countColumns, colName) {
			continue
		}
		col := frame.Col(colName)
		if !isNumeric(col) {
			continue
		}
		choices = append(choices, choiceColumn{name: colName, values: int64Values(col)})
	}

	tallies := make([]domain.RegionTally, len(names))
	for i, name := range names {
		tally := domain.RegionTally{
			Name:        name,
			Registered:  registered[i],
			Abstentions: abstentions[i],
			Null:        nulls[i],
			Choices:     make([]domain.ChoiceCount, 0, len(choices)),
		}
		for _, c := range choices {
			tally.Choices = append(tally.Choices, domain.ChoiceCount{Name: c.name, Votes: c.values[i]})
		}
		tallies[i] = tally
	}
	return tallies, nil
}
