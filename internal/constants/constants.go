// Package constants provides centralized constant values used throughout molekit.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Directory and file conventions for Molecule-tested Ansible repositories.
const (
	// RolesDir is the directory under the project root that holds Ansible roles.
	RolesDir = "roles"

	// PlaybooksDir is the directory under the project root that holds playbooks.
	// The batched syntax stage validates every playbook found here.
	PlaybooksDir = "playbooks"

	// MoleculeDir is the directory inside a role that holds Molecule scenarios.
	MoleculeDir = "molecule"

	// DefaultScenario is the Molecule scenario used when none is configured.
	DefaultScenario = "default"

	// ConvergeFileName is the conventional entry playbook of a Molecule scenario.
	// Its absence causes the syntax stage to skip the role.
	ConvergeFileName = "converge.yml"

	// ReportsDir is the directory (relative to the project root) where
	// generated reports are written. Created on demand.
	ReportsDir = "ci/reports"
)

// Home directory layout for molekit state.
const (
	// MolekitHome is the hidden directory name where molekit stores its data.
	// This directory is created in the user's home directory unless
	// MOLEKIT_HOME overrides it.
	MolekitHome = ".molekit"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// CLILogFileName is the rotating log file written by every invocation.
	CLILogFileName = "molekit.log"
)

// Execution limits.
const (
	// CommandTimeout is the hard wall-clock limit for a single stage command.
	// There is no stage-level or pipeline-level timeout; this is the only one.
	CommandTimeout = 600 * time.Second

	// DefaultParallelism is the worker count for parallelizable stages.
	DefaultParallelism = 4
)

// Output truncation limits.
const (
	// ReportOutputLimit bounds stdout/stderr embedded in structured reports.
	ReportOutputLimit = 500

	// ConsolePreviewLimit bounds stdout/stderr previews on the console.
	ConsolePreviewLimit = 200
)

// Log rotation settings for the CLI log file.
const (
	// LogMaxSizeMB is the maximum size in megabytes before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age in days of retained rotated files.
	LogMaxAgeDays = 30

	// LogCompress controls gzip compression of rotated files.
	LogCompress = true
)
