package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/molekit/molekit/internal/config"
	"github.com/molekit/molekit/internal/errors"
	"github.com/molekit/molekit/internal/execx"
	"github.com/molekit/molekit/internal/pipeline"
	"github.com/molekit/molekit/internal/report"
	"github.com/molekit/molekit/internal/tui"
)

// runOptions holds the run command's flag values.
type runOptions struct {
	stage       string
	role        string
	parallel    int
	parallelSet bool
	reportName  string
	dryRun      bool
}

// AddRunCommand adds the run command to the root command.
func AddRunCommand(root *cobra.Command, flags *GlobalFlags) {
	root.AddCommand(newRunCmd(flags))
}

func newRunCmd(flags *GlobalFlags) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the CI pipeline (lint, syntax, molecule)",
		Long: `Run one pipeline stage or the whole chain against discovered roles.

Examples:
  molekit run
  molekit run --stage lint
  molekit run --stage molecule --role common/base
  molekit run --parallel 8 --report json
  molekit run --dry-run`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.parallelSet = cmd.Flags().Changed("parallel")
			return runPipeline(cmd.Context(), os.Stdout, opts, flags)
		},
	}

	cmd.Flags().StringVarP(&opts.stage, "stage", "s", string(pipeline.StageAll), "stage to run (lint|syntax|molecule|all)")
	cmd.Flags().StringVarP(&opts.role, "role", "r", "", "specific role to test (e.g. common/base)")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", 0, "number of parallel jobs (default from config)")
	cmd.Flags().StringVar(&opts.reportName, "report", "", "generate report in specified format (json|junit|html)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show what would be run without executing")

	return cmd
}

// runPipeline executes the requested stage(s) and prints live results, the
// summary, and any requested report. The returned error selects the process
// exit code: nil for a clean run, ErrStageFailed for stage failures,
// ErrInterrupted when the context was canceled by a signal.
func runPipeline(ctx context.Context, w io.Writer, opts *runOptions, flags *GlobalFlags) error {
	logger := GetLogger()
	ctx = logger.WithContext(ctx)
	tui.CheckNoColor()

	stage, err := pipeline.ParseStage(opts.stage)
	if err != nil {
		return err
	}

	// Validate the report format up front; discovering it is wrong after a
	// 10-minute molecule run would waste the whole run.
	var format report.Format
	if opts.reportName != "" {
		if format, err = report.ParseFormat(opts.reportName); err != nil {
			return err
		}
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
		cfg = config.DefaultConfig()
	}

	parallel := cfg.Pipeline.Parallelism
	if opts.parallelSet {
		parallel = opts.parallel
	}

	executor := execx.NewExecutor(
		execx.WithTimeout(cfg.Pipeline.Timeout),
		execx.WithEnv(cfg.Env),
		execx.WithDryRun(opts.dryRun),
	)
	runner := pipeline.NewStageRunner(cfg, executor)
	scheduler := pipeline.NewScheduler(runner, parallel)
	printer := tui.NewPrinter(w, flags.Verbose)

	if !flags.Quiet {
		printer.Header(stage, opts.role, parallel, opts.dryRun)
		printer.StageResultsHeading()
	}

	run := pipeline.NewRun()
	scheduler.OnResult(func(result pipeline.StageResult) {
		if !flags.Quiet {
			printer.StageResult(result)
		}
	})

	results, runErr := scheduler.Run(ctx, stage, opts.role)
	run.Append(results...)
	run.Finalize()

	if runErr != nil {
		printer.Interrupted()
		logger.Warn().Int("completed_stages", len(run.Stages)).Msg("pipeline interrupted")
		return errors.ErrInterrupted
	}

	printer.Summary(run)

	if opts.reportName != "" {
		generator := report.NewGenerator(cfg.Paths.ReportsDir)
		path, writeErr := generator.Write(run, format)
		if writeErr != nil {
			return writeErr
		}
		printer.ReportSaved(opts.reportName, path)
		logger.Info().Str("path", path).Str("format", opts.reportName).Msg("report generated")
	}

	if run.Failed > 0 {
		return errors.Wrapf(errors.ErrStageFailed, "%d of %d stages failed", run.Failed, len(run.Stages))
	}
	return nil
}
