// Package errors provides centralized error handling for molekit.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrStageFailed indicates that one or more stage results in a run
	// finished with a failed status.
	ErrStageFailed = errors.New("stage failed")

	// ErrInterrupted indicates the run was aborted by SIGINT or SIGTERM.
	ErrInterrupted = errors.New("pipeline interrupted")

	// ErrInvalidStage indicates an unknown stage name was requested.
	ErrInvalidStage = errors.New("invalid stage")

	// ErrInvalidReportFormat indicates an unknown report format was requested.
	ErrInvalidReportFormat = errors.New("invalid report format")

	// ErrReportWrite indicates the report file could not be written.
	// Report failures are deliberately surfaced rather than swallowed.
	ErrReportWrite = errors.New("report write failed")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalid indicates a configuration value failed validation.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrCommandNotConfigured indicates a mock command was not configured in tests.
	ErrCommandNotConfigured = errors.New("command not configured")
)
