// Package testutil provides testing utilities for molekit.
//
// This package contains mock errors and test helpers used across test files.
// It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockSpawnFailed simulates a command that could not be started.
	ErrMockSpawnFailed = errors.New("spawn failed")
)
