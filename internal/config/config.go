// Package config provides configuration loading and validation for molekit.
//
// Configuration is layered: built-in defaults, then the user's global config
// (~/.molekit/config.yaml), then the project config (.molekit/config.yaml),
// then MOLEKIT_* environment variables. Later layers win.
package config

import "time"

// Config is the root configuration for a pipeline run.
type Config struct {
	Paths    PathsConfig       `mapstructure:"paths"    yaml:"paths"`
	Commands CommandsConfig    `mapstructure:"commands" yaml:"commands"`
	Pipeline PipelineConfig    `mapstructure:"pipeline" yaml:"pipeline"`
	Env      map[string]string `mapstructure:"env"      yaml:"env,omitempty"`
}

// PathsConfig locates the conventional directories of the repository under test.
type PathsConfig struct {
	// RolesDir is the directory holding Ansible roles, relative to the
	// project root unless absolute.
	RolesDir string `mapstructure:"roles_dir" yaml:"roles_dir"`

	// PlaybooksDir is the directory scanned by the batched syntax stage.
	PlaybooksDir string `mapstructure:"playbooks_dir" yaml:"playbooks_dir"`

	// ReportsDir is where generated reports are written. Created on demand.
	ReportsDir string `mapstructure:"reports_dir" yaml:"reports_dir"`
}

// CommandsConfig holds the base command for each stage tool. The stage
// runners append scope arguments (role path, converge playbook) to these.
// Commands run through sh -c, so shell syntax is available.
type CommandsConfig struct {
	// Lint is the primary linter invocation.
	Lint string `mapstructure:"lint" yaml:"lint"`

	// LintStrict is the second, stricter linter run over the same scope.
	LintStrict string `mapstructure:"lint_strict" yaml:"lint_strict"`

	// Syntax is the syntax-only playbook validation command.
	Syntax string `mapstructure:"syntax" yaml:"syntax"`

	// Molecule is the scenario test command, run inside the role directory.
	Molecule string `mapstructure:"molecule" yaml:"molecule"`
}

// PipelineConfig tunes pipeline execution.
type PipelineConfig struct {
	// Scenario is the Molecule scenario name used by the molecule stage.
	Scenario string `mapstructure:"scenario" yaml:"scenario"`

	// Timeout is the hard wall-clock limit for one stage command.
	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`

	// Parallelism is the worker count for the lint and syntax stages.
	// The molecule stage is always sequential regardless of this value.
	Parallelism int `mapstructure:"parallelism" yaml:"parallelism"`
}
