package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/molekit/molekit/internal/constants"
	"github.com/molekit/molekit/internal/pipeline"
)

// Printer renders pipeline progress and summaries to a terminal.
type Printer struct {
	w       io.Writer
	verbose bool
}

// NewPrinter creates a printer writing to w. Verbose mode adds truncated
// stdout previews under each stage line.
func NewPrinter(w io.Writer, verbose bool) *Printer {
	return &Printer{w: w, verbose: verbose}
}

// Header prints the run banner before any stage executes.
func (p *Printer) Header(stage pipeline.Stage, role string, parallelism int, dryRun bool) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(p.w, StyleBold.Render(rule))
	fmt.Fprintln(p.w, StyleBold.Render("  Molecule CI Pipeline"))
	fmt.Fprintln(p.w, StyleBold.Render(rule))
	fmt.Fprintf(p.w, "  Stage: %s\n", stage)
	if role == "" {
		role = pipeline.RoleAll
	}
	fmt.Fprintf(p.w, "  Role: %s\n", role)
	fmt.Fprintf(p.w, "  Parallel jobs: %d\n", parallelism)
	if dryRun {
		fmt.Fprintln(p.w, StyleWarning.Render("  [DRY RUN MODE]"))
	}
	fmt.Fprintln(p.w)
}

// StageResult prints the one-line status for a completed stage result, plus
// output/error previews where appropriate.
func (p *Printer) StageResult(result pipeline.StageResult) {
	pres := PresentStatus(result.Status)
	fmt.Fprintf(p.w, "  [%s] %s (%.2fs)\n", pres.Style.Render(pres.Label), result.Name, result.Duration)

	if p.verbose && result.Output != "" {
		fmt.Fprintf(p.w, "    Output: %s...\n", preview(result.Output))
	}
	if result.Status == pipeline.StatusFailed && result.Error != "" {
		fmt.Fprintf(p.w, "    %s %s...\n", StyleError.Render("Error:"), preview(result.Error))
	}
}

// StageResultsHeading prints the heading above the live stage lines.
func (p *Printer) StageResultsHeading() {
	fmt.Fprintln(p.w, StyleBold.Render("Stage Results:"))
}

// Summary prints the pipeline summary block and the final banner.
// The run must already be finalized.
func (p *Printer) Summary(run *pipeline.Run) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(p.w, "\n"+rule)
	fmt.Fprintln(p.w, StyleBold.Render("Pipeline Summary"))
	fmt.Fprintln(p.w, rule)

	fmt.Fprintf(p.w, "  Total stages: %d\n", len(run.Stages))
	fmt.Fprintf(p.w, "  %s %d\n", StyleSuccess.Render("Passed:"), run.Passed)
	fmt.Fprintf(p.w, "  %s %d\n", StyleError.Render("Failed:"), run.Failed)
	fmt.Fprintf(p.w, "  %s %d\n", StyleWarning.Render("Skipped:"), run.Skipped)
	fmt.Fprintf(p.w, "  Duration: %.2fs\n", run.TotalDuration)

	if run.Failed == 0 {
		fmt.Fprintf(p.w, "\n%s\n", StyleSuccess.Render("Pipeline PASSED"))
	} else {
		fmt.Fprintf(p.w, "\n%s\n", StyleError.Render("Pipeline FAILED"))
	}
}

// Roles prints the discovered role listing.
func (p *Printer) Roles(roles []string) {
	fmt.Fprintf(p.w, "Found %d roles with molecule tests:\n", len(roles))
	for _, role := range roles {
		fmt.Fprintf(p.w, "  - %s\n", role)
	}
}

// ReportSaved prints the location of a generated report.
func (p *Printer) ReportSaved(format, path string) {
	fmt.Fprintf(p.w, "\n%s report saved to: %s\n", strings.ToUpper(format), path)
}

// Interrupted prints the abort notice after a user interrupt.
func (p *Printer) Interrupted() {
	fmt.Fprintf(p.w, "\n\n%s\n", StyleWarning.Render("Pipeline interrupted by user"))
}

// preview bounds console previews of command output to a readable length.
func preview(s string) string {
	return truncateString(s, constants.ConsolePreviewLimit)
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
