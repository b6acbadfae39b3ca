package cmd

import (
	"context"
	"fmt"

	polint "github.com/BenWiederhake/lint-po-args"
	"github.com/spf13/cobra"
)

func newHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [dir]",
		Short: "Show recorded check runs",
		Long: `Show recent runs recorded in the history journal, newest first. Runs
are recorded by "check --journal" or when the project config enables
the journal.`,
		Example: `  # Last 20 runs of the current project
  lint-po-args history

  # Last 5 runs as JSON
  lint-po-args history -n 5 -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	limit, _ := cmd.Flags().GetInt("limit")
	format, _ := cmd.Flags().GetString("output")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	j, err := polint.OpenJournal(ctx, dir)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer j.Close()

	runs, err := j.RecentRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("read journal: %w", err)
	}

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		out, err := polint.FormatRunsJSON(runs)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	case "text":
		if len(runs) == 0 {
			fmt.Fprintln(w, polint.Msg("journal_empty"))
			return nil
		}
		fmt.Fprintln(w, polint.FormatRunsTable(runs))
	default:
		if out := polint.FormatRunsJSONL(runs); out != "" {
			fmt.Fprintln(w, out)
		}
	}
	return nil
}
