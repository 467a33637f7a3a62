package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"time"
)

// Lint runs the YAML linter and, when configured, the stricter Ansible linter
// over the same scope. An empty role lints the whole roles tree.
//
// Both linters feed ONE result: if either exits non-zero the result is failed
// and the second linter's output is appended to the first's. Splitting them
// into two results would change the externally observed stage count, so the
// merged form is kept deliberately.
func (r *StageRunner) Lint(ctx context.Context, role string) StageResult {
	start := time.Now()
	name := stageName(StageLint, role)

	scope := r.cfg.Paths.RolesDir + string(filepath.Separator)
	if role != "" {
		scope = filepath.Join(r.cfg.Paths.RolesDir, role)
	}

	cmd := fmt.Sprintf("%s %s", r.cfg.Commands.Lint, scope)
	out := r.exec.Execute(ctx, cmd, "")
	status := statusFor(out.ExitCode)
	stdout, stderr := out.Stdout, out.Stderr

	if r.cfg.Commands.LintStrict != "" {
		strictCmd := fmt.Sprintf("%s %s", r.cfg.Commands.LintStrict, scope)
		strict := r.exec.Execute(ctx, strictCmd, "")
		if strict.ExitCode != 0 {
			status = StatusFailed
			stdout += fmt.Sprintf("\n\nAnsible-lint output:\n%s", strict.Stdout)
			stderr += strict.Stderr
		}
	}

	return StageResult{
		Name:     name,
		Status:   status,
		Duration: seconds(start),
		Output:   stdout,
		Error:    stderr,
		Command:  cmd,
		Role:     roleOrAll(role),
	}
}

// stageName formats the conventional result name, stage:role or stage:all.
func stageName(stage Stage, role string) string {
	return fmt.Sprintf("%s:%s", stage, roleOrAll(role))
}
