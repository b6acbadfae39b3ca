package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	polint "github.com/BenWiederhake/lint-po-args"
	"github.com/spf13/cobra"
)

func newWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <path>...",
		Short: "Re-check catalogs whenever they change",
		Long: `Watch .po catalogs, or directories containing them, and re-run the
check whenever a catalog is created, modified or removed. Rapid bursts
of filesystem events are debounced into a single run.

With --notify, a desktop notification fires when the catalogs go from
clean to broken or back.`,
		Example: `  # Watch a whole po/ directory
  lint-po-args watch po/

  # Watch two catalogs with printf checks and desktop notifications
  lint-po-args watch -p --notify local po/de.po po/fr.po`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			pc, err := projectConfig(cmd, ".")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cmd.Flags().Changed("lint-printf") && pc.Lint.Printf {
				cmd.Flags().Set("lint-printf", "true")
			}
			if !cmd.Flags().Changed("debounce") && pc.Watch.Debounce != "" {
				if _, err := time.ParseDuration(pc.Watch.Debounce); err != nil {
					return fmt.Errorf("config watch.debounce: %w", err)
				}
				cmd.Flags().Set("debounce", pc.Watch.Debounce)
			}
			if !cmd.Flags().Changed("notify") && pc.Watch.Notify != "" {
				cmd.Flags().Set("notify", pc.Watch.Notify)
			}
			return nil
		},
		RunE: runWatch,
	}

	cmd.Flags().BoolP("lint-printf", "p", false, "Also compare printf-style directives")
	cmd.Flags().IntP("jobs", "w", 0, "Catalogs checked concurrently (0 = one per CPU)")
	cmd.Flags().Duration("debounce", 300*time.Millisecond, "Quiet period before re-checking")
	cmd.Flags().String("notify", "none", "Notification target: none, local or cmd:<template>")

	return cmd
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := polint.Config{Paths: args}
	cfg.LintPrintf, _ = cmd.Flags().GetBool("lint-printf")
	cfg.Jobs, _ = cmd.Flags().GetInt("jobs")
	cfg.OutputFormat, _ = cmd.Flags().GetString("output")
	debounce, _ := cmd.Flags().GetDuration("debounce")
	notifySpec, _ := cmd.Flags().GetString("notify")

	notifier, err := polint.NotifierFromSpec(notifySpec)
	if err != nil {
		return fmt.Errorf("notify: %w", err)
	}

	shutdownTracer := polint.InitTracer("lint-po-args", Version)
	shutdownMeter := polint.InitMeter("lint-po-args", Version)
	defer func() {
		shutdownCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
		defer c()
		shutdownTracer(shutdownCtx)
		shutdownMeter(shutdownCtx)
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		polint.LogWarn("%s", fmt.Sprintf(polint.Msg("signal_received"), sig))
		cancel()
	}()

	polint.LogInfo(polint.Msg("watch_started"), len(cfg.Paths))

	w := cmd.OutOrStdout()
	hadIssues := false

	onResults := func(results []polint.FileResult) {
		for _, r := range results {
			if r.Err != nil {
				polint.LogError(polint.Msg("catalog_failed"), r.Path, r.Err)
			}
		}

		findings := polint.Findings(results)
		switch cfg.OutputFormat {
		case "json":
			if out, err := polint.FormatFindingsJSON(findings); err == nil {
				fmt.Fprintln(w, out)
			}
		case "text":
			if len(findings) > 0 {
				fmt.Fprintln(w, polint.FormatFindingsText(findings))
			}
		default:
			if out := polint.FormatFindingsJSONL(findings); out != "" {
				fmt.Fprintln(w, out)
			}
		}

		sum := polint.Summarize(results)
		if sum.Issues == 0 && sum.Failed == 0 {
			polint.LogOK("%s", polint.Msg("all_clean"))
		} else {
			polint.LogWarn(polint.Msg("issues_count"), sum.Issues)
		}

		// Notify only on clean/broken transitions, not on every run
		bad := sum.Issues > 0 || sum.Failed > 0
		if bad && !hadIssues {
			if err := notifier.Notify(ctx, "lint-po-args", polint.Msg("notify_issues")); err != nil {
				polint.LogWarn("notify: %v", err)
			}
		}
		if !bad && hadIssues {
			if err := notifier.Notify(ctx, "lint-po-args", polint.Msg("notify_clean")); err != nil {
				polint.LogWarn("notify: %v", err)
			}
		}
		hadIssues = bad
	}

	err = polint.WatchCatalogs(ctx, cfg, polint.WatchOptions{
		Debounce:  debounce,
		OnResults: onResults,
	})
	if err != nil {
		return err
	}

	polint.LogInfo("%s", polint.Msg("interrupted"))
	return nil
}
