// Package report serializes a finished pipeline run into machine-readable
// report files: JSON for tooling, JUnit XML for CI dashboards, and a
// self-contained HTML page for humans.
//
// Reports are written into a fixed reports directory with timestamped file
// names; the directory is created on demand. Embedded command output is
// truncated in the structured formats to bound report size. Unlike stage
// failures, report write failures are surfaced to the caller: a report was
// requested explicitly and must not fail silently.
package report

import (
	"os"
	"path/filepath"
	"time"

	"github.com/molekit/molekit/internal/errors"
	"github.com/molekit/molekit/internal/pipeline"
)

// Format selects the report serialization.
type Format string

// Supported report formats.
const (
	FormatJSON  Format = "json"
	FormatJUnit Format = "junit"
	FormatHTML  Format = "html"
)

// ParseFormat converts a format name into a Format.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatJUnit, FormatHTML:
		return Format(name), nil
	default:
		return "", errors.Wrapf(errors.ErrInvalidReportFormat, "%q is not one of json, junit, html", name)
	}
}

// timestampLayout shapes report file names, e.g. report_20240131_154502.json.
const timestampLayout = "20060102_150405"

// Generator writes reports for pipeline runs into a target directory.
type Generator struct {
	dir string
	now func() time.Time
}

// NewGenerator creates a report generator targeting dir.
func NewGenerator(dir string) *Generator {
	return &Generator{dir: dir, now: time.Now}
}

// Write serializes the run in the requested format and returns the path of
// the written file. The reports directory is created if absent.
func (g *Generator) Write(run *pipeline.Run, format Format) (string, error) {
	if err := os.MkdirAll(g.dir, 0o750); err != nil {
		return "", errors.Wrap(errors.ErrReportWrite, err.Error())
	}

	timestamp := g.now().Format(timestampLayout)

	var (
		name string
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		name = "report_" + timestamp + ".json"
		data, err = renderJSON(run)
	case FormatJUnit:
		name = "junit_" + timestamp + ".xml"
		data, err = renderJUnit(run)
	case FormatHTML:
		name = "report_" + timestamp + ".html"
		data, err = renderHTML(run)
	default:
		return "", errors.Wrapf(errors.ErrInvalidReportFormat, "%q", format)
	}
	if err != nil {
		return "", err
	}

	path := filepath.Join(g.dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.Wrap(errors.ErrReportWrite, err.Error())
	}
	return path, nil
}

// truncate bounds s to max bytes for embedding in structured reports.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
