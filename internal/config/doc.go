// Package config provides configuration management for the referendum map
// pipeline. It handles loading configuration from multiple sources,
// validation, and resolution of every input and output path.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern REFERENDUM_* for namespacing:
//
//	REFERENDUM_DATA_DIR=./data
//	REFERENDUM_DATA_CHARSET=latin1
//	REFERENDUM_BALLOT_EXPRESSED="Choice A,Choice B"
//	REFERENDUM_OUTPUT_RENDER=false
//	REFERENDUM_LOGGING_LEVEL=debug
//
// # Configuration File
//
// When no file is given explicitly, Load looks for referendum.yaml and
// configs/referendum.yaml in the working directory:
//
//	data:
//	  dir: data
//	  ballots_delimiter: ";"
//	ballot:
//	  overseas_marker: Z
//	  choice: Choice A
//	  expressed: [Choice A, Choice B]
//	output:
//	  dir: output
//	  write_workbook: true
//
// # Path Management
//
// Config.ResolvePaths returns a Paths value holding the resolved location of
// every input table and output artefact:
//
//	cfg, err := config.Load("")
//	paths := cfg.ResolvePaths()
//	paths.BallotsCSV // data/referendum.csv
//
// # Validation
//
// Struct tags are checked with go-playground/validator, followed by
// cross-field checks (the distinguished choice must be an expressed choice,
// telemetry toggles need a target file).
package config
