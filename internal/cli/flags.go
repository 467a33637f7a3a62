// Package cli provides the command-line interface for molekit.
package cli

import (
	"context"
	stderrors "errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/molekit/molekit/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates every stage passed (or nothing ran).
	ExitSuccess = 0
	// ExitFailure indicates stage failures or any other error.
	ExitFailure = 1
	// ExitInterrupt indicates the run was aborted by SIGINT/SIGTERM,
	// matching the conventional 128+SIGINT shell code.
	ExitInterrupt = 130
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Verbose enables debug-level logging and output previews.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// AddGlobalFlags adds global flags to a command.
// These flags are available to all subcommands via PersistentFlags.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// BindGlobalFlags binds global flags to Viper for environment variable
// support with the MOLEKIT_ prefix (e.g. MOLEKIT_VERBOSE).
func BindGlobalFlags(v *viper.Viper, cmd *cobra.Command) error {
	rootFlags := cmd.Root().PersistentFlags()

	if err := v.BindPFlag("verbose", rootFlags.Lookup("verbose")); err != nil {
		return err
	}
	if err := v.BindPFlag("quiet", rootFlags.Lookup("quiet")); err != nil {
		return err
	}

	v.SetEnvPrefix("MOLEKIT")
	v.AutomaticEnv()

	return nil
}

// ExitCodeForError returns the process exit code for the given error.
// Stage failures and interrupts have dedicated codes so shell callers and CI
// wrappers can distinguish them.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case stderrors.Is(err, errors.ErrInterrupted),
		stderrors.Is(err, context.Canceled):
		return ExitInterrupt
	default:
		return ExitFailure
	}
}
