package report

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/molekit/molekit/internal/errors"
	"github.com/molekit/molekit/internal/pipeline"
)

// htmlTemplate renders a self-contained report page: a summary block plus a
// table of every stage result.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>CI Pipeline Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .passed { color: green; }
        .failed { color: red; }
        .skipped { color: orange; }
        table { border-collapse: collapse; width: 100%; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #4CAF50; color: white; }
        tr:nth-child(even) { background-color: #f2f2f2; }
        .summary { margin: 20px 0; padding: 15px; background: #f5f5f5; border-radius: 5px; }
    </style>
</head>
<body>
    <h1>CI Pipeline Report</h1>
    <div class="summary">
        <h2>Summary</h2>
        <p>Start Time: {{.StartTime}}</p>
        <p>End Time: {{.EndTime}}</p>
        <p>Duration: {{printf "%.2f" .TotalDuration}}s</p>
        <p class="passed">Passed: {{.Passed}}</p>
        <p class="failed">Failed: {{.Failed}}</p>
        <p class="skipped">Skipped: {{.Skipped}}</p>
        <p><strong>Overall Status: <span class="{{.OverallStatus}}">{{.OverallStatusUpper}}</span></strong></p>
    </div>
    <h2>Stage Results</h2>
    <table>
        <tr>
            <th>Stage</th>
            <th>Role</th>
            <th>Status</th>
            <th>Duration</th>
        </tr>
{{- range .Stages}}
        <tr><td>{{.Name}}</td><td>{{.Role}}</td><td class="{{.Status}}">{{.StatusUpper}}</td><td>{{printf "%.2f" .Duration}}s</td></tr>
{{- end}}
    </table>
</body>
</html>
`

type htmlStage struct {
	Name        string
	Role        string
	Status      string
	StatusUpper string
	Duration    float64
}

type htmlReport struct {
	StartTime          string
	EndTime            string
	TotalDuration      float64
	Passed             int
	Failed             int
	Skipped            int
	OverallStatus      string
	OverallStatusUpper string
	Stages             []htmlStage
}

func renderHTML(run *pipeline.Run) ([]byte, error) {
	tmpl, err := template.New("report").Parse(htmlTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse html report template")
	}

	doc := htmlReport{
		StartTime:          run.StartTime.Format(time.RFC3339),
		EndTime:            run.EndTime.Format(time.RFC3339),
		TotalDuration:      run.TotalDuration,
		Passed:             run.Passed,
		Failed:             run.Failed,
		Skipped:            run.Skipped,
		OverallStatus:      string(run.OverallStatus),
		OverallStatusUpper: strings.ToUpper(string(run.OverallStatus)),
		Stages:             make([]htmlStage, 0, len(run.Stages)),
	}
	for _, s := range run.Stages {
		doc.Stages = append(doc.Stages, htmlStage{
			Name:        s.Name,
			Role:        s.Role,
			Status:      string(s.Status),
			StatusUpper: strings.ToUpper(string(s.Status)),
			Duration:    s.Duration,
		})
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		return nil, errors.Wrap(err, "failed to render html report")
	}
	return buf.Bytes(), nil
}
