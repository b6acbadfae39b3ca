package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	polint "github.com/BenWiederhake/lint-po-args"
	"github.com/spf13/cobra"
)

func newPruneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune [dir]",
		Short: "Delete old runs from the history journal",
		Long: `Delete journal runs older than a cutoff. Without --execute this is a
dry run that only lists what would be deleted.`,
		Example: `  # See what a 30-day prune would delete
  lint-po-args prune

  # Actually delete runs older than 90 days
  lint-po-args prune --days 90 --execute`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			if days <= 0 {
				return fmt.Errorf("--days must be positive, got %d", days)
			}
			return nil
		},
		RunE: runPrune,
	}

	cmd.Flags().Int("days", 30, "Delete runs older than this many days")
	cmd.Flags().Bool("execute", false, "Actually delete instead of listing")

	return cmd
}

func runPrune(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	days, _ := cmd.Flags().GetInt("days")
	execute, _ := cmd.Flags().GetBool("execute")
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

	res, err := j.PruneRuns(ctx, days, execute)
	if err != nil {
		return fmt.Errorf("prune journal: %w", err)
	}

	w := cmd.OutOrStdout()
	if format == "json" {
		payload := struct {
			Candidates int      `json:"candidates"`
			Deleted    int      `json:"deleted"`
			Runs       []string `json:"runs"`
		}{len(res.Candidates), res.Deleted, res.Candidates}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	if len(res.Candidates) == 0 {
		fmt.Fprintf(w, "No runs older than %d days.\n", days)
		return nil
	}

	if execute {
		fmt.Fprintf(w, "Deleted %d run(s):\n", res.Deleted)
	} else {
		fmt.Fprintf(w, "Runs older than %d days (%d run(s), dry-run):\n", days, len(res.Candidates))
	}
	for _, id := range res.Candidates {
		fmt.Fprintf(w, "  %s\n", id)
	}
	if !execute {
		fmt.Fprintln(w, "\nRun with --execute to delete.")
	}
	return nil
}
