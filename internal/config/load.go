package config

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/molekit/molekit/internal/constants"
	"github.com/molekit/molekit/internal/errors"
)

// ProjectConfigPath is the project-level config file, relative to the
// working directory.
const ProjectConfigPath = ".molekit/config.yaml"

// newViperInstance creates a new Viper instance with standard molekit
// configuration: defaults, MOLEKIT_ environment prefix, and key replacer.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("MOLEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (MOLEKIT_* prefix)
//  2. Project config (.molekit/config.yaml)
//  3. Global config (~/.molekit/config.yaml)
//  4. Built-in defaults
//
// The function returns an error only for actual configuration problems,
// not for missing config files (which are expected in many scenarios).
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("roles_dir", cfg.Paths.RolesDir).
		Dur("timeout", cfg.Pipeline.Timeout).
		Int("parallelism", cfg.Pipeline.Parallelism).
		Msg("configuration loaded")

	return cfg, nil
}

// LoadFromPaths loads configuration from specific file paths for testing.
// Either path can be empty to skip that layer.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}
	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// loadGlobalConfig attempts to load the global config file (~/.molekit/config.yaml).
// Returns nil if the file doesn't exist or the home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, ok := globalConfigPathIfExists()
	if !ok {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig attempts to load the project config file (.molekit/config.yaml).
// Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	if !fileExists(ProjectConfigPath) {
		return nil
	}

	v.SetConfigFile(ProjectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// globalConfigPathIfExists returns the global config path if it exists.
func globalConfigPathIfExists() (string, bool) {
	home, err := HomeDir()
	if err != nil {
		return "", false
	}

	globalConfigPath := filepath.Join(home, "config.yaml")
	if !fileExists(globalConfigPath) {
		return "", false
	}
	return globalConfigPath, true
}

// HomeDir returns the molekit home directory. MOLEKIT_HOME overrides the
// default of ~/.molekit.
func HomeDir() (string, error) {
	if home := os.Getenv("MOLEKIT_HOME"); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(userHome, constants.MolekitHome), nil
}

// unmarshalAndValidate unmarshals viper config into Config and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to handle time.Duration conversion from strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// setDefaults configures all default values on the Viper instance.
// These defaults match the values from DefaultConfig().
// IMPORTANT: Keys must match the mapstructure tag names exactly.
func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("paths.roles_dir", defaults.Paths.RolesDir)
	v.SetDefault("paths.playbooks_dir", defaults.Paths.PlaybooksDir)
	v.SetDefault("paths.reports_dir", defaults.Paths.ReportsDir)

	v.SetDefault("commands.lint", defaults.Commands.Lint)
	v.SetDefault("commands.lint_strict", defaults.Commands.LintStrict)
	v.SetDefault("commands.syntax", defaults.Commands.Syntax)
	v.SetDefault("commands.molecule", defaults.Commands.Molecule)

	v.SetDefault("pipeline.scenario", defaults.Pipeline.Scenario)
	v.SetDefault("pipeline.timeout", defaults.Pipeline.Timeout.String())
	v.SetDefault("pipeline.parallelism", defaults.Pipeline.Parallelism)

	v.SetDefault("env", map[string]string{})
}

// isConfigNotFoundError returns true if the error is a viper config file
// not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
