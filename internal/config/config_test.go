package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molekit/molekit/internal/config"
	"github.com/molekit/molekit/internal/errors"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()

	assert.Equal(t, "roles", cfg.Paths.RolesDir)
	assert.Equal(t, "playbooks", cfg.Paths.PlaybooksDir)
	assert.Equal(t, "ci/reports", cfg.Paths.ReportsDir)
	assert.Equal(t, "default", cfg.Pipeline.Scenario)
	assert.Equal(t, 600*time.Second, cfg.Pipeline.Timeout)
	assert.Equal(t, 4, cfg.Pipeline.Parallelism)

	require.NoError(t, config.Validate(cfg), "defaults must validate")
}

func TestLoadFromPaths_NoFilesUsesDefaults(t *testing.T) {
	cfg, err := config.LoadFromPaths(context.Background(), "", "")

	require.NoError(t, err)

	defaults := config.DefaultConfig()
	assert.Equal(t, defaults.Paths, cfg.Paths)
	assert.Equal(t, defaults.Commands, cfg.Commands)
	assert.Equal(t, defaults.Pipeline, cfg.Pipeline)
	assert.Empty(t, cfg.Env)
}

func TestLoadFromPaths_ProjectOverridesDefaults(t *testing.T) {
	project := writeConfigFile(t, `
pipeline:
  scenario: podman
  timeout: 120s
  parallelism: 2
commands:
  lint_strict: ""
`)

	cfg, err := config.LoadFromPaths(context.Background(), project, "")

	require.NoError(t, err)
	assert.Equal(t, "podman", cfg.Pipeline.Scenario)
	assert.Equal(t, 2*time.Minute, cfg.Pipeline.Timeout)
	assert.Equal(t, 2, cfg.Pipeline.Parallelism)
	assert.Empty(t, cfg.Commands.LintStrict)

	// Untouched keys keep their defaults.
	assert.Equal(t, "roles", cfg.Paths.RolesDir)
	assert.Equal(t, "molecule test", cfg.Commands.Molecule)
}

func TestLoadFromPaths_ProjectWinsOverGlobal(t *testing.T) {
	global := writeConfigFile(t, `
pipeline:
  scenario: global-scenario
  parallelism: 8
paths:
  roles_dir: ansible/roles
`)
	project := writeConfigFile(t, `
pipeline:
  scenario: project-scenario
`)

	cfg, err := config.LoadFromPaths(context.Background(), project, global)

	require.NoError(t, err)
	assert.Equal(t, "project-scenario", cfg.Pipeline.Scenario)
	assert.Equal(t, 8, cfg.Pipeline.Parallelism, "global value survives where project is silent")
	assert.Equal(t, "ansible/roles", cfg.Paths.RolesDir)
}

func TestLoadFromPaths_EnvOverlay(t *testing.T) {
	project := writeConfigFile(t, `
env:
  ANSIBLE_FORCE_COLOR: "1"
  MOLECULE_NO_LOG: "false"
`)

	cfg, err := config.LoadFromPaths(context.Background(), project, "")

	require.NoError(t, err)
	assert.Equal(t, "1", cfg.Env["ANSIBLE_FORCE_COLOR"])
	assert.Equal(t, "false", cfg.Env["MOLECULE_NO_LOG"])
}

func TestLoadFromPaths_InvalidValuesRejected(t *testing.T) {
	project := writeConfigFile(t, `
pipeline:
  parallelism: 0
`)

	_, err := config.LoadFromPaths(context.Background(), project, "")
	require.ErrorIs(t, err, errors.ErrConfigInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		errIs  error
	}{
		{
			name:   "valid defaults",
			mutate: func(*config.Config) {},
		},
		{
			name:   "empty lint_strict allowed",
			mutate: func(cfg *config.Config) { cfg.Commands.LintStrict = "" },
		},
		{
			name:   "empty roles dir",
			mutate: func(cfg *config.Config) { cfg.Paths.RolesDir = "" },
			errIs:  errors.ErrConfigInvalid,
		},
		{
			name:   "empty reports dir",
			mutate: func(cfg *config.Config) { cfg.Paths.ReportsDir = "" },
			errIs:  errors.ErrConfigInvalid,
		},
		{
			name:   "empty lint command",
			mutate: func(cfg *config.Config) { cfg.Commands.Lint = "" },
			errIs:  errors.ErrConfigInvalid,
		},
		{
			name:   "empty molecule command",
			mutate: func(cfg *config.Config) { cfg.Commands.Molecule = "" },
			errIs:  errors.ErrConfigInvalid,
		},
		{
			name:   "zero timeout",
			mutate: func(cfg *config.Config) { cfg.Pipeline.Timeout = 0 },
			errIs:  errors.ErrConfigInvalid,
		},
		{
			name:   "zero parallelism",
			mutate: func(cfg *config.Config) { cfg.Pipeline.Parallelism = 0 },
			errIs:  errors.ErrConfigInvalid,
		},
		{
			name:   "empty scenario",
			mutate: func(cfg *config.Config) { cfg.Pipeline.Scenario = "" },
			errIs:  errors.ErrConfigInvalid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			tc.mutate(cfg)

			err := config.Validate(cfg)
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	require.ErrorIs(t, config.Validate(nil), errors.ErrConfigNil)
}

func TestHomeDir_EnvOverride(t *testing.T) {
	t.Setenv("MOLEKIT_HOME", "/tmp/custom-molekit")

	home, err := config.HomeDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-molekit", home)
}

func TestHomeDir_DefaultUnderUserHome(t *testing.T) {
	t.Setenv("MOLEKIT_HOME", "")

	home, err := config.HomeDir()
	require.NoError(t, err)

	userHome, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(userHome, ".molekit"), home)
}
