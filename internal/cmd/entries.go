package cmd

import (
	"context"
	"fmt"

	polint "github.com/BenWiederhake/lint-po-args"
	"github.com/spf13/cobra"
)

func newEntriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entries <catalog.po>...",
		Short: "List the parsed entries of catalogs",
		Long: `Parse .po catalogs and print every entry without linting it. Useful
for inspecting what the parser extracted from a catalog.`,
		Example: `  # List entries of one catalog
  lint-po-args entries po/de.po

  # JSONL entries for piping into jq
  lint-po-args entries -o jsonl po/de.po | jq .msgid`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEntries,
	}

	cmd.Flags().IntP("jobs", "w", 0, "Catalogs parsed concurrently (0 = one per CPU)")

	return cmd
}

func runEntries(cmd *cobra.Command, args []string) error {
	cfg := polint.Config{Paths: args}
	cfg.Jobs, _ = cmd.Flags().GetInt("jobs")
	cfg.OutputFormat, _ = cmd.Flags().GetString("output")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	results := polint.CheckFiles(ctx, cfg)

	w := cmd.OutOrStdout()
	for _, r := range results {
		if r.Err != nil {
			polint.LogError(polint.Msg("catalog_failed"), r.Path, r.Err)
		}
	}

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

	if sum := polint.Summarize(results); sum.Failed > 0 {
		return &ExitError{Code: 2, Err: fmt.Errorf("%d catalog(s) could not be parsed", sum.Failed)}
	}
	return nil
}
