// Package shared holds helpers used across packages that belong to no
// single pipeline stage.
//
// # Structure
//
// - testutil: log capture and fixture copying for tests
//
// It should NOT contain pipeline logic or anything imported by production
// code paths.
package shared
