// Package execx provides shell command execution for pipeline stages.
//
// SECURITY NOTE: The commands executed by this package come from project
// configuration files (.molekit/config.yaml) or the user's global config
// (~/.molekit/config.yaml). These are treated as trusted input, the same
// trust model as Makefiles, npm scripts, or CI/CD configurations.
// The sh -c invocation is intentional to support shell features (pipes,
// globs, find -exec) commonly used in stage commands.
package execx

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Runner defines the interface for executing shell commands.
// This allows for testing by injecting mock implementations.
type Runner interface {
	// Run executes a shell command and returns its output.
	// env, when non-nil, is the complete environment for the process.
	Run(ctx context.Context, workDir, command string, env []string) (stdout, stderr string, exitCode int, err error)
}

// ShellRunner implements Runner using os/exec and sh -c.
type ShellRunner struct{}

// Run executes a shell command using sh -c.
func (r *ShellRunner) Run(ctx context.Context, workDir, command string, env []string) (stdout, stderr string, exitCode int, err error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Dir = workDir
	cmd.Env = env

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err = cmd.Run()
	stdout = outBuf.String()
	stderr = errBuf.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = 1
		}
	}

	return stdout, stderr, exitCode, err
}

// Ensure ShellRunner implements Runner.
var _ Runner = (*ShellRunner)(nil)
