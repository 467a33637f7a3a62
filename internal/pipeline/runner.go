package pipeline

import (
	"time"

	"github.com/molekit/molekit/internal/config"
	"github.com/molekit/molekit/internal/execx"
)

// RoleAll is the role field value for batched (whole-tree) stage results.
const RoleAll = "all"

// StageRunner maps (stage kind, role) pairs to stage results by composing
// commands from the configured templates and handing them to the executor.
type StageRunner struct {
	cfg  *config.Config
	exec *execx.Executor
}

// NewStageRunner creates a stage runner backed by the given executor.
func NewStageRunner(cfg *config.Config, exec *execx.Executor) *StageRunner {
	return &StageRunner{cfg: cfg, exec: exec}
}

// seconds returns the wall-clock seconds elapsed since start.
func seconds(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// statusFor maps a command exit code to a stage status.
func statusFor(exitCode int) Status {
	if exitCode == 0 {
		return StatusPassed
	}
	return StatusFailed
}

// roleOrAll normalizes an empty role to the batched scope marker.
func roleOrAll(role string) string {
	if role == "" {
		return RoleAll
	}
	return role
}
