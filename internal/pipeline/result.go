// Package pipeline implements the stage execution engine: stage runners for
// lint, syntax and molecule checks, a scheduler that fans stages out across
// discovered roles, and the aggregated result model for a whole run.
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/molekit/molekit/internal/errors"
)

// Status is the outcome of a single stage execution.
type Status string

// Stage status values. Pending and Running are transient; every completed
// execution resolves directly to Passed, Failed or Skipped.
const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// StageResult captures the outcome of one stage execution against one role
// (or the batched "all" scope). Immutable once constructed.
type StageResult struct {
	Name     string  `json:"name"`
	Status   Status  `json:"status"`
	Duration float64 `json:"duration"` // seconds
	Output   string  `json:"output"`
	Error    string  `json:"error"`
	Command  string  `json:"command"`
	Role     string  `json:"role"`
}

// Run aggregates every stage result of one invocation. It is created once at
// process start, appended to as results arrive, and finalized after all
// stages complete. The stage list records completion order.
type Run struct {
	ID            string        `json:"run_id"`
	StartTime     time.Time     `json:"start_time"`
	EndTime       time.Time     `json:"end_time"`
	TotalDuration float64       `json:"total_duration"` // seconds
	Stages        []StageResult `json:"stages"`
	Passed        int           `json:"passed"`
	Failed        int           `json:"failed"`
	Skipped       int           `json:"skipped"`
	OverallStatus Status        `json:"overall_status"`
}

// NewRun creates a run aggregate stamped with a fresh ID and start time.
func NewRun() *Run {
	return &Run{
		ID:            uuid.NewString(),
		StartTime:     time.Now(),
		OverallStatus: StatusPending,
	}
}

// Append adds completed stage results to the run.
func (r *Run) Append(results ...StageResult) {
	r.Stages = append(r.Stages, results...)
}

// Finalize stamps the end time and recomputes the summary counts from the
// result list. Counts are always derived in a single fresh pass, never
// tracked incrementally, so they cannot drift from the stage list.
func (r *Run) Finalize() {
	r.EndTime = time.Now()
	r.TotalDuration = r.EndTime.Sub(r.StartTime).Seconds()

	r.Passed, r.Failed, r.Skipped = 0, 0, 0
	for _, s := range r.Stages {
		switch s.Status {
		case StatusPassed:
			r.Passed++
		case StatusFailed:
			r.Failed++
		case StatusSkipped:
			r.Skipped++
		case StatusPending, StatusRunning:
			// Transient states never reach a finalized run.
		}
	}

	if r.Failed > 0 {
		r.OverallStatus = StatusFailed
	} else {
		r.OverallStatus = StatusPassed
	}
}

// HasFailures reports whether any recorded stage failed.
func (r *Run) HasFailures() bool {
	for _, s := range r.Stages {
		if s.Status == StatusFailed {
			return true
		}
	}
	return false
}

// Stage identifies one category of validation.
type Stage string

// Stage kinds. StageAll chains the other three in a fixed order.
const (
	StageLint     Stage = "lint"
	StageSyntax   Stage = "syntax"
	StageMolecule Stage = "molecule"
	StageAll      Stage = "all"
)

// StageSequence is the fixed order in which StageAll chains the stages.
// The chain stops at the first stage that produces any failed result.
func StageSequence() []Stage {
	return []Stage{StageLint, StageSyntax, StageMolecule}
}

// ParseStage converts a stage name into a Stage.
func ParseStage(name string) (Stage, error) {
	switch Stage(name) {
	case StageLint, StageSyntax, StageMolecule, StageAll:
		return Stage(name), nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidStage, "%q is not one of lint, syntax, molecule, all", name)
	}
}
