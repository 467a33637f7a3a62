package config

import (
	"github.com/molekit/molekit/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			RolesDir:     constants.RolesDir,
			PlaybooksDir: constants.PlaybooksDir,
			ReportsDir:   constants.ReportsDir,
		},
		Commands: CommandsConfig{
			// yamllint reads the repo-level rule file so local runs match CI.
			Lint:       "yamllint -c .yamllint.yml",
			LintStrict: "ansible-lint",
			Syntax:     "ansible-playbook --syntax-check",
			Molecule:   "molecule test",
		},
		Pipeline: PipelineConfig{
			Scenario:    constants.DefaultScenario,
			Timeout:     constants.CommandTimeout,
			Parallelism: constants.DefaultParallelism,
		},
	}
}
