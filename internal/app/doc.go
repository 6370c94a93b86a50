// Package app wires the referendum pipeline together.
//
// # Initialization Flow
//
//	1. Load configuration from defaults, YAML file and environment
//	2. Initialize logging and telemetry
//	3. Register the pipeline steps with an operations.Manager
//
// # Pipeline
//
// Run executes, in order: validate, load, merge-areas, merge-ballots,
// aggregate, render-map (unless rendering is disabled) and export. The
// aggregated table is then printed to the configured stdout writer.
//
// # Error Handling
//
// All errors are returned to the caller. The app does not call os.Exit(),
// allowing the main function to control the exit process.
package app
