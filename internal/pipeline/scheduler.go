package pipeline

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/molekit/molekit/internal/discovery"
)

// ResultCallback is invoked as each stage result becomes available, in
// completion order. Used to drive the live console line. Invocations are
// serialized by the scheduler, so callbacks need no internal locking.
type ResultCallback func(StageResult)

// Scheduler orchestrates running stages across discovered roles.
//
// Lint and syntax fan out over a bounded worker pool; molecule is always
// sequential because a scenario run spins up an isolated test environment
// and parallel runs starve each other of resources. The all stage chains
// lint, syntax, molecule in order and stops at the first stage that yields
// any failed result.
type Scheduler struct {
	runner      *StageRunner
	rolesDir    string
	parallelism int
	onResult    ResultCallback
}

// NewScheduler creates a scheduler over the given stage runner.
// parallelism values below 1 are raised to 1.
func NewScheduler(runner *StageRunner, parallelism int) *Scheduler {
	if parallelism < 1 {
		parallelism = 1
	}
	return &Scheduler{
		runner:      runner,
		rolesDir:    runner.cfg.Paths.RolesDir,
		parallelism: parallelism,
	}
}

// OnResult registers the live result callback.
func (s *Scheduler) OnResult(cb ResultCallback) {
	s.onResult = cb
}

// Run executes one stage (or the whole chain for StageAll) and returns the
// results in completion order. A non-nil error is returned only for context
// cancellation; stage failures are ordinary results, never errors.
func (s *Scheduler) Run(ctx context.Context, stage Stage, role string) ([]StageResult, error) {
	if stage == StageAll {
		return s.runAll(ctx, role)
	}

	if role != "" {
		result := s.runOne(ctx, stage, role)
		s.emit(result)
		return []StageResult{result}, ctx.Err()
	}

	roles := discovery.Roles(s.rolesDir)
	zerolog.Ctx(ctx).Info().
		Str("stage", string(stage)).
		Int("roles", len(roles)).
		Msg("running stage across discovered roles")

	if stage == StageMolecule {
		return s.runSequential(ctx, roles)
	}
	return s.runParallel(ctx, stage, roles)
}

// runAll chains the stages in their fixed order, stopping after the first
// stage that produced any failed result. This short-circuit is the system's
// only failure-propagation rule. Implemented as an explicit loop rather than
// recursion to keep control flow obvious.
func (s *Scheduler) runAll(ctx context.Context, role string) ([]StageResult, error) {
	var all []StageResult

	for _, stage := range StageSequence() {
		stageResults, err := s.Run(ctx, stage, role)
		all = append(all, stageResults...)
		if err != nil {
			return all, err
		}

		if anyFailed(stageResults) {
			zerolog.Ctx(ctx).Warn().
				Str("stage", string(stage)).
				Msg("stage failed, skipping remaining stages")
			break
		}
	}

	return all, ctx.Err()
}

// runParallel fans the stage out over a bounded worker pool and collects
// results as each completes. The returned order is completion order, not
// submission order.
func (s *Scheduler) runParallel(ctx context.Context, stage Stage, roles []string) ([]StageResult, error) {
	results := make([]StageResult, 0, len(roles))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)

	for _, role := range roles {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			result := s.runOne(gctx, stage, role)
			if gctx.Err() != nil {
				// Abandon results produced during shutdown.
				return gctx.Err()
			}

			mu.Lock()
			results = append(results, result)
			s.emit(result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// runSequential runs the molecule stage for each role in discovery order,
// one at a time.
func (s *Scheduler) runSequential(ctx context.Context, roles []string) ([]StageResult, error) {
	results := make([]StageResult, 0, len(roles))

	for _, role := range roles {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		result := s.runner.Molecule(ctx, role)
		if err := ctx.Err(); err != nil {
			return results, err
		}

		results = append(results, result)
		s.emit(result)
	}

	return results, nil
}

// runOne dispatches a single stage execution for one role (or the batched
// scope when role is empty).
func (s *Scheduler) runOne(ctx context.Context, stage Stage, role string) StageResult {
	switch stage {
	case StageLint:
		return s.runner.Lint(ctx, role)
	case StageSyntax:
		return s.runner.Syntax(ctx, role)
	case StageMolecule:
		return s.runner.Molecule(ctx, role)
	default:
		// ParseStage guards every entry point; reaching here is a bug.
		panic("pipeline: unknown stage " + string(stage))
	}
}

// emit delivers a completed result to the live callback, if registered.
func (s *Scheduler) emit(result StageResult) {
	if s.onResult != nil {
		s.onResult(result)
	}
}

// anyFailed reports whether any result in the slice has failed status.
func anyFailed(results []StageResult) bool {
	for _, r := range results {
		if r.Status == StatusFailed {
			return true
		}
	}
	return false
}
