package cmd

import (
	"fmt"
	"os"

	polint "github.com/BenWiederhake/lint-po-args"
	"github.com/spf13/cobra"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Initialize project configuration",
		Long: `Initialize a .lint-po-args.yaml config and a .lint-po-args/ state
directory in the target project.

Asks whether printf-style directives should be checked by default and
whether runs should be recorded in the history journal.`,
		Example: `  # Initialize the current project
  lint-po-args init

  # Initialize another project
  lint-po-args init /path/to/project`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	w := cmd.ErrOrStderr()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s╔══════════════════════════════════════════════╗%s\n", polint.ColorCyan, polint.ColorReset)
	fmt.Fprintf(w, "%s║          lint-po-args init                   ║%s\n", polint.ColorCyan, polint.ColorReset)
	fmt.Fprintf(w, "%s╚══════════════════════════════════════════════╝%s\n", polint.ColorCyan, polint.ColorReset)
	fmt.Fprintln(w)

	if err := polint.RunInitWithReader(dir, os.Stdin); err != nil {
		return err
	}
	return nil
}
