package dataprocessing

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

func runStages(t *testing.T) ([]domain.RegionTally, [][]string) {
	t.Helper()
	ds, err := fixtureLoader(t, "testdata").Load(context.Background())
	require.NoError(t, err)

	areas, err := MergeRegionsAndDepartments(ds.Regions, ds.Departments)
	require.NoError(t, err)

	merged, err := NewBallotMerger(config.Default().Ballot).Merge(ds.Ballots, areas)
	require.NoError(t, err)
	for _, code := range merged.Col("Department code").Records() {
		require.False(t, strings.Contains(code, "Z"))
	}

	byRegion, err := ComputeResultByRegion(merged)
	require.NoError(t, err)

	tallies, err := Tallies(byRegion)
	require.NoError(t, err)
	return tallies, byRegion.Records()
}

func TestPipeline_ThreeRegions(t *testing.T) {
	tallies, _ := runStages(t)

	want := []domain.RegionTally{
		{
			Name: "Alpha", Registered: 530, Abstentions: 53, Null: 9,
			Choices: []domain.ChoiceCount{{Name: "Choice A", Votes: 214}, {Name: "Choice B", Votes: 254}},
		},
		{
			Name: "Beta", Registered: 480, Abstentions: 48, Null: 6,
			Choices: []domain.ChoiceCount{{Name: "Choice A", Votes: 195}, {Name: "Choice B", Votes: 231}},
		},
		{
			Name: "Gamma", Registered: 100, Abstentions: 10, Null: 2,
			Choices: []domain.ChoiceCount{{Name: "Choice A", Votes: 42}, {Name: "Choice B", Votes: 46}},
		},
	}
	assert.Equal(t, want, tallies)
}

func TestPipeline_Idempotent(t *testing.T) {
	_, first := runStages(t)
	_, second := runStages(t)
	assert.Equal(t, first, second)
}
