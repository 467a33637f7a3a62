package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	molekiterrors "github.com/molekit/molekit/internal/errors"
	"github.com/molekit/molekit/internal/pipeline"
)

func TestNewRun(t *testing.T) {
	run := pipeline.NewRun()

	assert.NotEmpty(t, run.ID)
	assert.False(t, run.StartTime.IsZero())
	assert.Equal(t, pipeline.StatusPending, run.OverallStatus)
	assert.Empty(t, run.Stages)
}

func TestRun_Finalize_Counts(t *testing.T) {
	tests := []struct {
		name          string
		statuses      []pipeline.Status
		wantPassed    int
		wantFailed    int
		wantSkipped   int
		wantOverall   pipeline.Status
		wantHasFailed bool
	}{
		{
			name:        "all passed",
			statuses:    []pipeline.Status{pipeline.StatusPassed, pipeline.StatusPassed},
			wantPassed:  2,
			wantOverall: pipeline.StatusPassed,
		},
		{
			name:          "mixed",
			statuses:      []pipeline.Status{pipeline.StatusPassed, pipeline.StatusFailed, pipeline.StatusSkipped},
			wantPassed:    1,
			wantFailed:    1,
			wantSkipped:   1,
			wantOverall:   pipeline.StatusFailed,
			wantHasFailed: true,
		},
		{
			name:        "skips only",
			statuses:    []pipeline.Status{pipeline.StatusSkipped, pipeline.StatusSkipped},
			wantSkipped: 2,
			wantOverall: pipeline.StatusPassed,
		},
		{
			name:        "empty run",
			statuses:    nil,
			wantOverall: pipeline.StatusPassed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := pipeline.NewRun()
			for _, status := range tt.statuses {
				run.Append(pipeline.StageResult{Name: "lint:all", Status: status})
			}

			run.Finalize()

			assert.Equal(t, tt.wantPassed, run.Passed)
			assert.Equal(t, tt.wantFailed, run.Failed)
			assert.Equal(t, tt.wantSkipped, run.Skipped)
			assert.Equal(t, tt.wantOverall, run.OverallStatus)
			assert.Equal(t, tt.wantHasFailed, run.HasFailures())

			// Counts always partition the stage list.
			assert.Equal(t, len(run.Stages), run.Passed+run.Failed+run.Skipped)
			assert.False(t, run.EndTime.IsZero())
			assert.GreaterOrEqual(t, run.TotalDuration, 0.0)
		})
	}
}

func TestRun_Finalize_RecomputesFreshly(t *testing.T) {
	run := pipeline.NewRun()
	run.Append(pipeline.StageResult{Name: "lint:all", Status: pipeline.StatusFailed})
	run.Finalize()
	require.Equal(t, 1, run.Failed)

	// Finalizing again after more results must not double-count.
	run.Append(pipeline.StageResult{Name: "syntax:all", Status: pipeline.StatusPassed})
	run.Finalize()

	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, 1, run.Passed)
	assert.Equal(t, len(run.Stages), run.Passed+run.Failed+run.Skipped)
}

func TestParseStage(t *testing.T) {
	for _, name := range []string{"lint", "syntax", "molecule", "all"} {
		stage, err := pipeline.ParseStage(name)
		require.NoError(t, err)
		assert.Equal(t, pipeline.Stage(name), stage)
	}

	_, err := pipeline.ParseStage("unit")
	require.Error(t, err)
	require.ErrorIs(t, err, molekiterrors.ErrInvalidStage)
}

func TestStageSequence(t *testing.T) {
	assert.Equal(t,
		[]pipeline.Stage{pipeline.StageLint, pipeline.StageSyntax, pipeline.StageMolecule},
		pipeline.StageSequence())
}
