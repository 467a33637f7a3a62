package execx

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/molekit/molekit/internal/constants"
)

// Outcome is the normalized result of one command execution.
// Every failure mode (non-zero exit, timeout, unstartable binary) is folded
// into an Outcome; Execute never returns an error to the caller.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Executor runs stage commands with a hard per-command timeout and an
// optional environment overlay applied to every invocation.
type Executor struct {
	runner  Runner
	timeout time.Duration
	env     map[string]string
	dryRun  bool
}

// Option configures an Executor.
type Option func(*Executor)

// WithTimeout overrides the default per-command timeout.
// Values <= 0 keep the default.
func WithTimeout(timeout time.Duration) Option {
	return func(e *Executor) {
		if timeout > 0 {
			e.timeout = timeout
		}
	}
}

// WithEnv sets the environment overlay merged onto the ambient environment
// for every command. Overlay entries win on key collision. The ambient
// process environment is never mutated.
func WithEnv(env map[string]string) Option {
	return func(e *Executor) {
		e.env = env
	}
}

// WithDryRun enables dry-run mode: commands are reported, never spawned.
func WithDryRun(dryRun bool) Option {
	return func(e *Executor) {
		e.dryRun = dryRun
	}
}

// WithRunner injects a custom command runner (for testing).
func WithRunner(runner Runner) Option {
	return func(e *Executor) {
		e.runner = runner
	}
}

// NewExecutor creates a command executor.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		runner:  &ShellRunner{},
		timeout: constants.CommandTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs a single shell command in workDir and returns its normalized
// outcome. The command is bounded by the executor's timeout; on expiry it is
// forcibly terminated and the outcome carries exit code 1 with an explanatory
// stderr. Invocation failures (unresolvable binary, bad workDir) are likewise
// normalized to exit code 1 - Execute never panics or returns an error.
//
// In dry-run mode no process is spawned; the outcome echoes the command that
// would have run.
func (e *Executor) Execute(ctx context.Context, command, workDir string) Outcome {
	log := zerolog.Ctx(ctx)

	if e.dryRun {
		return Outcome{
			ExitCode: 0,
			Stdout:   fmt.Sprintf("[DRY RUN] Would execute: %s", command),
		}
	}

	log.Debug().
		Str("command", command).
		Str("work_dir", workDir).
		Msg("executing stage command")

	cmdCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	stdout, stderr, exitCode, runErr := e.runner.Run(cmdCtx, workDir, command, e.environ())
	duration := time.Since(start)

	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
		log.Error().
			Str("command", command).
			Dur("duration", duration).
			Msg("stage command timed out")
		return Outcome{
			ExitCode: 1,
			Stderr:   fmt.Sprintf("Command timed out after %d seconds", int(e.timeout.Seconds())),
		}
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			// Process never started (e.g. sh missing, workDir gone).
			log.Error().
				Str("command", command).
				Err(runErr).
				Msg("stage command could not be invoked")
			return Outcome{
				ExitCode: 1,
				Stderr:   runErr.Error(),
			}
		}
	}

	log.Debug().
		Str("command", command).
		Int("exit_code", exitCode).
		Dur("duration", duration).
		Msg("stage command completed")

	return Outcome{
		ExitCode: exitCode,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// environ merges the overlay onto a copy of the ambient environment.
// Returns nil when no overlay is set so the child inherits directly.
func (e *Executor) environ() []string {
	if len(e.env) == 0 {
		return nil
	}

	ambient := os.Environ()
	merged := make(map[string]string, len(ambient)+len(e.env))
	keys := make([]string, 0, len(ambient)+len(e.env))

	for _, kv := range ambient {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if _, seen := merged[k]; !seen {
			keys = append(keys, k)
		}
		merged[k] = v
	}
	for k, v := range e.env {
		if _, seen := merged[k]; !seen {
			keys = append(keys, k)
		}
		merged[k] = v
	}

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+merged[k])
	}
	return env
}
