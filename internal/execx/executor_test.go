package execx_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	molekiterrors "github.com/molekit/molekit/internal/errors"
	"github.com/molekit/molekit/internal/execx"
	"github.com/molekit/molekit/internal/testutil"
)

// mockResponse is a canned response for one command.
type mockResponse struct {
	stdout   string
	stderr   string
	exitCode int
	err      error
	delay    time.Duration
}

// mockRunner implements execx.Runner for testing.
type mockRunner struct {
	mu        sync.Mutex
	responses map[string]mockResponse
	calls     []string
	lastEnv   []string
}

func newMockRunner() *mockRunner {
	return &mockRunner{responses: make(map[string]mockResponse)}
}

func (m *mockRunner) setResponse(command string, resp mockResponse) {
	m.responses[command] = resp
}

func (m *mockRunner) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockRunner) Run(ctx context.Context, _, command string, env []string) (stdout, stderr string, exitCode int, err error) {
	m.mu.Lock()
	m.calls = append(m.calls, command)
	m.lastEnv = env
	m.mu.Unlock()

	resp, ok := m.responses[command]
	if !ok {
		return "", "command not configured", 1, molekiterrors.ErrCommandNotConfigured
	}

	if resp.delay > 0 {
		select {
		case <-ctx.Done():
			return "", "context canceled", 1, ctx.Err()
		case <-time.After(resp.delay):
		}
	}

	return resp.stdout, resp.stderr, resp.exitCode, resp.err
}

var _ execx.Runner = (*mockRunner)(nil)

func testContext() context.Context {
	logger := zerolog.Nop()
	return logger.WithContext(context.Background())
}

func TestExecutor_Execute_Success(t *testing.T) {
	runner := newMockRunner()
	runner.setResponse("echo hi", mockResponse{stdout: "hi\n"})

	executor := execx.NewExecutor(execx.WithRunner(runner))
	out := executor.Execute(testContext(), "echo hi", "")

	assert.Equal(t, 0, out.ExitCode)
	assert.Equal(t, "hi\n", out.Stdout)
	assert.Empty(t, out.Stderr)
}

func TestExecutor_Execute_NonZeroExit(t *testing.T) {
	runner := newMockRunner()
	runner.setResponse("false", mockResponse{stderr: "boom", exitCode: 2})

	executor := execx.NewExecutor(execx.WithRunner(runner))
	out := executor.Execute(testContext(), "false", "")

	assert.Equal(t, 2, out.ExitCode)
	assert.Equal(t, "boom", out.Stderr)
}

func TestExecutor_Execute_Timeout(t *testing.T) {
	runner := newMockRunner()
	// Command takes 2 seconds but the timeout is 50ms.
	runner.setResponse("sleep", mockResponse{stdout: "late", delay: 2 * time.Second})

	executor := execx.NewExecutor(
		execx.WithRunner(runner),
		execx.WithTimeout(50*time.Millisecond),
	)
	out := executor.Execute(testContext(), "sleep", "")

	assert.Equal(t, 1, out.ExitCode)
	assert.Empty(t, out.Stdout)
	assert.Contains(t, out.Stderr, "timed out")
}

func TestExecutor_Execute_InvocationFailure(t *testing.T) {
	runner := newMockRunner()
	runner.setResponse("nosuchbinary", mockResponse{exitCode: 1, err: testutil.ErrMockSpawnFailed})

	executor := execx.NewExecutor(execx.WithRunner(runner))
	out := executor.Execute(testContext(), "nosuchbinary", "")

	assert.Equal(t, 1, out.ExitCode)
	assert.Empty(t, out.Stdout)
	assert.Equal(t, testutil.ErrMockSpawnFailed.Error(), out.Stderr)
}

func TestExecutor_Execute_DryRun(t *testing.T) {
	runner := newMockRunner()

	executor := execx.NewExecutor(
		execx.WithRunner(runner),
		execx.WithDryRun(true),
	)
	out := executor.Execute(testContext(), "molecule test -s default", "roles/common/base")

	assert.Equal(t, 0, out.ExitCode)
	assert.Equal(t, "[DRY RUN] Would execute: molecule test -s default", out.Stdout)
	assert.Empty(t, out.Stderr)
	assert.Zero(t, runner.callCount(), "dry run must not spawn any process")
}

func TestExecutor_Execute_EnvOverlay(t *testing.T) {
	runner := newMockRunner()
	runner.setResponse("env", mockResponse{})

	t.Setenv("MOLEKIT_TEST_AMBIENT", "ambient")

	executor := execx.NewExecutor(
		execx.WithRunner(runner),
		execx.WithEnv(map[string]string{
			"MOLEKIT_TEST_OVERLAY": "overlay",
			"MOLEKIT_TEST_AMBIENT": "overridden",
		}),
	)
	executor.Execute(testContext(), "env", "")

	require.NotNil(t, runner.lastEnv)
	assert.Contains(t, runner.lastEnv, "MOLEKIT_TEST_OVERLAY=overlay")
	assert.Contains(t, runner.lastEnv, "MOLEKIT_TEST_AMBIENT=overridden")
	assert.NotContains(t, runner.lastEnv, "MOLEKIT_TEST_AMBIENT=ambient")

	// The ambient process environment is never mutated.
	assert.Equal(t, "ambient", os.Getenv("MOLEKIT_TEST_AMBIENT"))
}

func TestExecutor_Execute_NoOverlayInheritsEnvironment(t *testing.T) {
	runner := newMockRunner()
	runner.setResponse("env", mockResponse{})

	executor := execx.NewExecutor(execx.WithRunner(runner))
	executor.Execute(testContext(), "env", "")

	assert.Nil(t, runner.lastEnv, "nil env lets the child inherit directly")
}

func TestShellRunner_Run(t *testing.T) {
	runner := &execx.ShellRunner{}

	stdout, stderr, exitCode, err := runner.Run(context.Background(), t.TempDir(), "echo hello", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "hello\n", stdout)
	assert.Empty(t, stderr)
}

func TestShellRunner_Run_ExitCode(t *testing.T) {
	runner := &execx.ShellRunner{}

	_, _, exitCode, err := runner.Run(context.Background(), t.TempDir(), "exit 3", nil)

	require.Error(t, err)
	assert.Equal(t, 3, exitCode)
}
