package geo

import (
	"math"

	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

// RatioSpec defines the mapped ratio: votes for Choice over the sum of the
// Expressed choices.
type RatioSpec struct {
	Choice    string
	Expressed []string
}

// Ratio computes the ratio for one region. It is NaN when no expressed vote
// was cast.
func (s RatioSpec) Ratio(t domain.RegionTally) float64 {
	votes, _ := t.Votes(s.Choice)
	total := t.Sum(s.Expressed)
	if total == 0 {
		return math.NaN()
	}
	return float64(votes) / float64(total)
}

// JoinShapes inner joins tallies with shapes on region name. Row order follows
// tallies; regions without a shape and shapes without a tally are dropped.
func JoinShapes(tallies []domain.RegionTally, shapes []Shape, spec RatioSpec) []domain.MapRow {
	byName := make(map[string][]Shape, len(shapes))
	for _, s := range shapes {
		byName[s.Name] = append(byName[s.Name], s)
	}

	rows := make([]domain.MapRow, 0, len(tallies))
	for _, tally := range tallies {
		for _, shape := range byName[tally.Name] {
			rows = append(rows, domain.MapRow{
				RegionTally: tally,
				Geometry:    shape.Geometry,
				Ratio:       spec.Ratio(tally),
			})
		}
	}
	return rows
}
