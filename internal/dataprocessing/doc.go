// Package dataprocessing implements the relational half of the referendum
// pipeline: loading the ballot and reference tables, joining them into one
// denormalized table keyed by geographic codes, and aggregating the ballot
// counts by region.
//
// # Stages
//
//  1. Loader: reads the ballot, region and department tables
//  2. MergeRegionsAndDepartments: builds the area lookup table
//  3. BallotMerger: drops overseas rows, pads department codes and joins
//     every ballot to its area
//  4. ComputeResultByRegion: sums the counts per region name
//
// Every stage takes gota data frames and returns a new frame; inputs are
// never modified.
//
// # Usage
//
//	loader := dataprocessing.NewLoader(logger, paths, cfg.Data, cfg.Ballot.Expressed)
//	ds, err := loader.Load(ctx)
//	if err != nil {
//	    return err // matches errors.ErrDataUnavailable
//	}
//	areas, err := dataprocessing.MergeRegionsAndDepartments(ds.Regions, ds.Departments)
//	merged, err := dataprocessing.NewBallotMerger(cfg.Ballot).Merge(ds.Ballots, areas)
//	byRegion, err := dataprocessing.ComputeResultByRegion(merged)
//
// # Joins
//
// All joins are inner joins. Departments whose region code is unknown,
// ballots whose department code has no area and overseas constituencies
// are dropped without warning.
package dataprocessing
