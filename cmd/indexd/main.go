package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"tech100/cmd"
	"tech100/internal/app"
	"tech100/internal/domain"
	"tech100/internal/logger"
	"tech100/internal/service"
	"tech100/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagStart     string
	flagEnd       string
	flagSinceBase bool
	flagRebuild   bool
	flagStrict    bool
	flagDebug     bool
	flagCSVDir    string
	flagProvider  string
)

func main() {
	root := &cobra.Command{
		Use:           "indexd",
		Short:         "daily batch pipeline for the TECH100 equity index",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagStart, "start", "", "range start (YYYY-MM-DD)")
	root.PersistentFlags().StringVar(&flagEnd, "end", "", "range end (YYYY-MM-DD), defaults to start")
	root.PersistentFlags().BoolVar(&flagSinceBase, "since-base", false, "recompute from the first declared membership date")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "development logging")

	root.AddCommand(
		newIngestCmd(),
		newReconcileCmd(),
		newCheckCmd(),
		newImputeCmd(),
		newComputeCmd(),
		newRunCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exit codes: 1 for configuration mistakes, 2 when the data itself is
// unusable (missing prices, failed quality checks)
func exitCode(err error) int {
	var dataErr domain.DataUnavailableError
	if errors.As(err, &dataErr) {
		return 2
	}
	return 1
}

func newContext() context.Context {
	if flagDebug {
		os.Setenv("TECH100_ENV", "dev")
	}
	return context.WithValue(context.Background(), logger.ContextKey, logger.New())
}

func resolveRange(deps *cmd.Dependencies) (time.Time, time.Time, error) {
	var start, end time.Time

	if flagSinceBase {
		decls, err := deps.PortfolioRepository.ListDeclarations(deps.Config.IndexCode)
		if err != nil {
			return start, end, err
		}
		if len(decls) == 0 {
			return start, end, domain.NewConfigurationError("--since-base requires at least one portfolio declaration")
		}
		start = util.Midnight(decls[0].EffectiveDate)
	} else {
		if flagStart == "" {
			return start, end, domain.NewConfigurationError("--start is required (or use --since-base)")
		}
		var err error
		start, err = time.Parse(time.DateOnly, flagStart)
		if err != nil {
			return start, end, domain.NewConfigurationError("invalid --start %q: must be YYYY-MM-DD", flagStart)
		}
	}

	end = start
	if flagEnd != "" {
		var err error
		end, err = time.Parse(time.DateOnly, flagEnd)
		if err != nil {
			return start, end, domain.NewConfigurationError("invalid --end %q: must be YYYY-MM-DD", flagEnd)
		}
	} else if flagSinceBase {
		end = util.Midnight(time.Now().UTC())
	}

	if end.Before(start) {
		return start, end, domain.NewConfigurationError("range ends (%s) before it starts (%s)", end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	return start, end, nil
}

func withDeps(run func(ctx context.Context, deps *cmd.Dependencies) error) func(*cobra.Command, []string) error {
	return func(*cobra.Command, []string) error {
		deps, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(deps)

		return run(newContext(), deps)
	}
}

func newIngestCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "ingest [file]",
		Short: "load provider CSV quotes into the raw price store",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies()
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)
			ctx := newContext()

			var summary *service.IngestSummary
			switch {
			case len(args) == 1 && flagProvider != "":
				summary, err = deps.IngestService.LoadProviderFile(ctx, flagProvider, args[0])
			case flagCSVDir != "":
				summary, err = deps.IngestService.LoadProviderDir(ctx, flagCSVDir)
			default:
				return domain.NewConfigurationError("ingest needs either --csv-dir or a file with --provider")
			}
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		},
	}
	c.Flags().StringVar(&flagCSVDir, "csv-dir", "", "directory of per-provider CSV files")
	c.Flags().StringVar(&flagProvider, "provider", "", "provider name for a single file")
	return c
}

func newReconcileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "reconcile raw provider quotes into canonical prices",
		RunE: withDeps(func(ctx context.Context, deps *cmd.Dependencies) error {
			start, end, err := resolveRange(deps)
			if err != nil {
				return err
			}
			summary, err := deps.ReconciliationService.Reconcile(ctx, start, end)
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		}),
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "audit canonical price completeness against declared membership",
		RunE: withDeps(func(ctx context.Context, deps *cmd.Dependencies) error {
			start, end, err := resolveRange(deps)
			if err != nil {
				return err
			}
			report, err := deps.CompletenessService.Check(ctx, start, end)
			if err != nil {
				return err
			}
			fmt.Printf("status=%s bad_days=%d\n", report.Status, report.BadDays)
			for _, d := range report.WorstDates {
				fmt.Printf("  %s: %d/%d (%.1f%%)\n", d.Date.Format(time.DateOnly), d.Ok, d.Expected, d.Coverage*100)
			}
			if report.Status == domain.CompletenessStatusFail {
				return domain.NewDataUnavailableError("completeness check failed with %d bad day(s)", report.BadDays)
			}
			return nil
		}),
	}
}

func newImputeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impute",
		Short: "fill canonical price gaps by carrying the last real price forward",
		RunE: withDeps(func(ctx context.Context, deps *cmd.Dependencies) error {
			start, end, err := resolveRange(deps)
			if err != nil {
				return err
			}
			summary, err := deps.ImputationService.Impute(ctx, start, end)
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		}),
	}
}

func newComputeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "compute",
		Short: "recompute index levels, weights, contributions, and stats",
		RunE: withDeps(func(ctx context.Context, deps *cmd.Dependencies) error {
			start, end, err := resolveRange(deps)
			if err != nil {
				return err
			}
			summary, err := deps.IndexService.Recompute(ctx, start, end, service.RecomputeOptions{
				Rebuild: flagRebuild,
				Strict:  flagStrict,
			})
			if err != nil {
				return err
			}
			fmt.Println(summary)
			return nil
		}),
	}
	c.Flags().BoolVar(&flagRebuild, "rebuild", false, "clear published rows in the range before recomputing")
	c.Flags().BoolVar(&flagStrict, "strict", false, "fail on any missing constituent price")
	return c
}

func newRunCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "run",
		Short: "run the full daily batch: ingest, reconcile, check, impute, compute",
		RunE: withDeps(func(ctx context.Context, deps *cmd.Dependencies) error {
			start, end, err := resolveRange(deps)
			if err != nil {
				return err
			}
			return deps.Pipeline.Run(ctx, app.PipelineInput{
				Start:   start,
				End:     end,
				Strict:  flagStrict,
				Rebuild: flagRebuild,
				CSVDir:  flagCSVDir,
			})
		}),
	}
	c.Flags().StringVar(&flagCSVDir, "csv-dir", "", "directory of per-provider CSV files to ingest first")
	c.Flags().BoolVar(&flagRebuild, "rebuild", false, "clear published rows in the range before recomputing")
	c.Flags().BoolVar(&flagStrict, "strict", false, "fail on any missing constituent price")
	return c
}
