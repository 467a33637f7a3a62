package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Molecule runs the full scenario test for one role, with the role directory
// as the working directory. Unlike the other stages there is no batched form:
// callers must always supply a role. The scheduler satisfies this by fanning
// the stage out role-by-role.
func (r *StageRunner) Molecule(ctx context.Context, role string) StageResult {
	start := time.Now()
	scenario := r.cfg.Pipeline.Scenario
	name := fmt.Sprintf("%s:%s:%s", StageMolecule, role, scenario)

	rolePath := filepath.Join(r.cfg.Paths.RolesDir, role)
	cmd := fmt.Sprintf("%s -s %s", r.cfg.Commands.Molecule, scenario)

	out := r.exec.Execute(ctx, cmd, rolePath)

	return StageResult{
		Name:     name,
		Status:   statusFor(out.ExitCode),
		Duration: seconds(start),
		Output:   out.Stdout,
		Error:    out.Stderr,
		Command:  cmd,
		Role:     role,
	}
}
