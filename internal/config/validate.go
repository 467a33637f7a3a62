package config

import (
	"github.com/molekit/molekit/internal/errors"
)

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - paths must not be empty
//   - stage commands must not be empty (lint_strict may be, disabling it)
//   - pipeline timeout must be positive
//   - pipeline parallelism must be at least 1
//   - scenario must not be empty
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validatePaths(&cfg.Paths); err != nil {
		return err
	}
	if err := validateCommands(&cfg.Commands); err != nil {
		return err
	}
	return validatePipeline(&cfg.Pipeline)
}

func validatePaths(cfg *PathsConfig) error {
	if cfg.RolesDir == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "paths.roles_dir must not be empty")
	}
	if cfg.PlaybooksDir == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "paths.playbooks_dir must not be empty")
	}
	if cfg.ReportsDir == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "paths.reports_dir must not be empty")
	}
	return nil
}

func validateCommands(cfg *CommandsConfig) error {
	if cfg.Lint == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "commands.lint must not be empty")
	}
	if cfg.Syntax == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "commands.syntax must not be empty")
	}
	if cfg.Molecule == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "commands.molecule must not be empty")
	}
	return nil
}

func validatePipeline(cfg *PipelineConfig) error {
	if cfg.Scenario == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "pipeline.scenario must not be empty")
	}
	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"pipeline.timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Parallelism < 1 {
		return errors.Wrapf(errors.ErrConfigInvalid,
			"pipeline.parallelism must be at least 1, got %d", cfg.Parallelism)
	}
	return nil
}
