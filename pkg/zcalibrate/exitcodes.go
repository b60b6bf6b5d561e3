// Package zcalibrate provides public constants for external tools
// (workflow managers, wrapper scripts) that drive the zcalibrate CLI.
package zcalibrate

// Exit codes returned by the zcalibrate CLI.
//
// A failed stage is not an exit-code condition: the run retains its
// workspace for diagnosis and the process still exits with ExitSuccess.
const (
	// ExitSuccess indicates every requested Z score was processed.
	ExitSuccess = 0

	// ExitFailure indicates an unexpected runtime failure.
	ExitFailure = 1

	// ExitConfigError indicates an invalid config file or invalid command-line arguments.
	ExitConfigError = 2

	// ExitEnvError indicates a temporary workspace could not be created or removed.
	ExitEnvError = 3
)
