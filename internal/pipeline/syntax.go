package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/molekit/molekit/internal/constants"
)

// Syntax validates playbook syntax. For a single role it checks the scenario's
// converge playbook; when that playbook is absent the role is skipped with
// duration zero and no command is executed. An empty role validates every
// playbook under the configured playbooks directory with one batched command.
func (r *StageRunner) Syntax(ctx context.Context, role string) StageResult {
	start := time.Now()
	name := stageName(StageSyntax, role)

	var cmd string
	if role != "" {
		converge := filepath.Join(
			r.cfg.Paths.RolesDir, role,
			constants.MoleculeDir, r.cfg.Pipeline.Scenario,
			constants.ConvergeFileName,
		)
		if _, err := os.Stat(converge); err != nil {
			return StageResult{
				Name:     name,
				Status:   StatusSkipped,
				Duration: 0,
				Output:   fmt.Sprintf("No %s found", constants.ConvergeFileName),
				Role:     role,
			}
		}
		cmd = fmt.Sprintf("%s %s", r.cfg.Commands.Syntax, converge)
	} else {
		cmd = fmt.Sprintf(`find %s -name '*.yml' -exec %s {} \;`,
			r.cfg.Paths.PlaybooksDir, r.cfg.Commands.Syntax)
	}

	out := r.exec.Execute(ctx, cmd, "")

	return StageResult{
		Name:     name,
		Status:   statusFor(out.ExitCode),
		Duration: seconds(start),
		Output:   out.Stdout,
		Error:    out.Stderr,
		Command:  cmd,
		Role:     roleOrAll(role),
	}
}
