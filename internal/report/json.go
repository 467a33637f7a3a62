package report

import (
	"encoding/json"
	"time"

	"github.com/molekit/molekit/internal/constants"
	"github.com/molekit/molekit/internal/errors"
	"github.com/molekit/molekit/internal/pipeline"
)

// jsonReport is the top-level JSON document shape.
type jsonReport struct {
	StartTime     string      `json:"start_time"`
	EndTime       string      `json:"end_time"`
	TotalDuration float64     `json:"total_duration"`
	Passed        int         `json:"passed"`
	Failed        int         `json:"failed"`
	Skipped       int         `json:"skipped"`
	OverallStatus string      `json:"overall_status"`
	Stages        []jsonStage `json:"stages"`
}

// jsonStage is one stage result entry. Output and error are truncated to
// keep reports bounded regardless of how chatty the underlying tools were.
type jsonStage struct {
	Name     string  `json:"name"`
	Status   string  `json:"status"`
	Duration float64 `json:"duration"`
	Role     string  `json:"role"`
	Command  string  `json:"command"`
	Output   string  `json:"output"`
	Error    string  `json:"error"`
}

func renderJSON(run *pipeline.Run) ([]byte, error) {
	doc := jsonReport{
		StartTime:     run.StartTime.Format(time.RFC3339),
		EndTime:       run.EndTime.Format(time.RFC3339),
		TotalDuration: run.TotalDuration,
		Passed:        run.Passed,
		Failed:        run.Failed,
		Skipped:       run.Skipped,
		OverallStatus: string(run.OverallStatus),
		Stages:        make([]jsonStage, 0, len(run.Stages)),
	}

	for _, s := range run.Stages {
		doc.Stages = append(doc.Stages, jsonStage{
			Name:     s.Name,
			Status:   string(s.Status),
			Duration: s.Duration,
			Role:     s.Role,
			Command:  s.Command,
			Output:   truncate(s.Output, constants.ReportOutputLimit),
			Error:    truncate(s.Error, constants.ReportOutputLimit),
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode json report")
	}
	return data, nil
}
