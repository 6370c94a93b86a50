package exporter

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

func byRegionFrame() dataframe.DataFrame {
	return dataframe.New(
		series.New([]string{"Alpha", "Beta", "Gamma"}, series.String, "name_reg"),
		series.New([]int{530, 480, 100}, series.Int, "Registered"),
		series.New([]int{53, 48, 10}, series.Int, "Abstentions"),
		series.New([]int{9, 6, 2}, series.Int, "Null"),
		series.New([]int{214, 195, 42}, series.Int, "Choice A"),
		series.New([]int{254, 231, 46}, series.Int, "Choice B"),
	)
}

func byRegionTallies() []domain.RegionTally {
	mk := func(name string, reg, abs, null, a, b int64) domain.RegionTally {
		return domain.RegionTally{
			Name: name, Registered: reg, Abstentions: abs, Null: null,
			Choices: []domain.ChoiceCount{{Name: "Choice A", Votes: a}, {Name: "Choice B", Votes: b}},
		}
	}
	return []domain.RegionTally{
		mk("Alpha", 530, 53, 9, 214, 254),
		mk("Beta", 480, 48, 6, 195, 231),
		mk("Gamma", 100, 10, 2, 42, 46),
	}
}
