package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	polint "github.com/BenWiederhake/lint-po-args"
	"github.com/spf13/cobra"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <catalog.po>...",
		Short: "Check catalogs for mistranslated options",
		Long: `Check .po catalogs for translations whose command-line options do not
match the original message, and optionally for mismatched printf-style
directives.

Findings go to stdout in the chosen output format; progress and
summaries go to stderr. The exit code is 0 when all catalogs are
clean, 1 when findings were reported, and 2 when a catalog could not
be parsed or read.`,
		Example: `  # Check one catalog
  lint-po-args check po/de.po

  # Check everything, including printf directives
  lint-po-args check --lint-printf po/*.po

  # JSON output for scripting
  lint-po-args check -o json po/de.po`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Project config supplies defaults; explicit flags win
			dir, _ := cmd.Flags().GetString("dir")
			pc, err := projectConfig(cmd, dir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if !cmd.Flags().Changed("lint-printf") && pc.Lint.Printf {
				cmd.Flags().Set("lint-printf", "true")
			}
			if !cmd.Flags().Changed("jobs") && pc.Lint.Jobs > 0 {
				cmd.Flags().Set("jobs", strconv.Itoa(pc.Lint.Jobs))
			}
			if !cmd.Flags().Changed("journal") && pc.Journal.Enabled {
				cmd.Flags().Set("journal", "true")
			}
			return nil
		},
		RunE: runCheck,
	}

	cmd.Flags().BoolP("lint-printf", "p", false, "Also compare printf-style directives")
	cmd.Flags().BoolP("show-entries", "s", false, "Print every parsed entry before the findings")
	cmd.Flags().IntP("jobs", "w", 0, "Catalogs checked concurrently (0 = one per CPU)")
	cmd.Flags().Bool("journal", false, "Record the run in the history journal")
	cmd.Flags().StringP("dir", "d", ".", "Project directory for config and journal")
	cmd.Flags().String("log-file", "", "Mirror log output into this file")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := polint.Config{Paths: args}
	cfg.LintPrintf, _ = cmd.Flags().GetBool("lint-printf")
	cfg.ShowEntries, _ = cmd.Flags().GetBool("show-entries")
	cfg.Jobs, _ = cmd.Flags().GetInt("jobs")
	cfg.Journal, _ = cmd.Flags().GetBool("journal")
	cfg.Dir, _ = cmd.Flags().GetString("dir")
	cfg.OutputFormat, _ = cmd.Flags().GetString("output")

	if logFile, _ := cmd.Flags().GetString("log-file"); logFile != "" {
		if err := polint.InitLogFile(logFile); err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer polint.CloseLogFile()
	}

	shutdownTracer := polint.InitTracer("lint-po-args", Version)
	shutdownMeter := polint.InitMeter("lint-po-args", Version)
	defer func() {
		shutdownCtx, c := context.WithTimeout(context.Background(), 5*time.Second)
		defer c()
		shutdownTracer(shutdownCtx)
		shutdownMeter(shutdownCtx)
	}()

	// Use command's context (set by ExecuteContext in main)
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

	polint.LogVerbose(polint.Msg("checking"), len(cfg.Paths))
	if cfg.LintPrintf {
		polint.LogVerbose("%s", polint.Msg("printf_enabled"))
	}

	results := polint.CheckFiles(ctx, cfg)

	return reportResults(cmd, cfg, results)
}

// reportResults prints entry listings and findings to stdout, logs the
// summary, records the journal entry when asked, and converts the
// outcome into the process exit code.
func reportResults(cmd *cobra.Command, cfg polint.Config, results []polint.FileResult) error {
	w := cmd.OutOrStdout()

	for _, r := range results {
		if r.Err != nil {
			polint.LogError(polint.Msg("catalog_failed"), r.Path, r.Err)
			continue
		}
		polint.LogVerbose(polint.Msg("catalog_scanned"), r.Path, len(r.Entries), len(r.Issues))
	}

	if cfg.ShowEntries {
		views := polint.EntryViews(results)
		switch cfg.OutputFormat {
		case "json":
			out, err := polint.FormatEntriesJSON(views)
			if err != nil {
				return err
			}
			fmt.Fprintln(w, out)
		case "text":
			if len(views) > 0 {
				fmt.Fprintln(w, polint.FormatEntriesText(views))
			}
		default:
			if out := polint.FormatEntriesJSONL(views); out != "" {
				fmt.Fprintln(w, out)
			}
		}
	}

	findings := polint.Findings(results)
	switch cfg.OutputFormat {
	case "json":
		out, err := polint.FormatFindingsJSON(findings)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
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
	polint.LogVerbose(polint.Msg("files_checked"), sum.Files)
	polint.LogVerbose(polint.Msg("entries_parsed"), sum.Entries)
	if sum.Failed > 0 {
		polint.LogWarn(polint.Msg("failed_count"), sum.Failed)
	}
	if sum.Issues > 0 {
		polint.LogWarn(polint.Msg("issues_count"), sum.Issues)
	}
	if sum.Issues == 0 && sum.Failed == 0 {
		polint.LogOK("%s", polint.Msg("all_clean"))
	}

	if cfg.Journal {
		if err := recordRun(cmd, cfg, sum); err != nil {
			polint.LogWarn("journal: %v", err)
		}
	}

	switch code := polint.Outcome(results); code {
	case 0:
		return nil
	case 1:
		flagged := 0
		for _, r := range results {
			if len(r.Issues) > 0 {
				flagged++
			}
		}
		return &ExitError{Code: 1, Err: fmt.Errorf(polint.Msg("issues_found"), sum.Issues, flagged)}
	default:
		return &ExitError{Code: code, Err: fmt.Errorf("%d catalog(s) could not be parsed", sum.Failed)}
	}
}

func recordRun(cmd *cobra.Command, cfg polint.Config, sum polint.Summary) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	j, err := polint.OpenJournal(ctx, cfg.Dir)
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.RecordRun(ctx, sum, polint.Options{LintPrintf: cfg.LintPrintf})
	if err != nil {
		return err
	}
	polint.LogVerbose(polint.Msg("journal_recorded"), rec.ID)
	return nil
}
