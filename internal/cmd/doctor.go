package cmd

import (
	"fmt"

	polint "github.com/BenWiederhake/lint-po-args"
	"github.com/spf13/cobra"
)

func newDoctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external command availability",
		Long: `Check which external commands lint-po-args can make use of.

Probes the GNU gettext tools (msgfmt, msgcat, msgattrib) and the
platform notifier used by "watch --notify local". All of them are
optional; linting works without any external command.`,
		Example: `  # Check all external tools
  lint-po-args doctor

  # Machine-readable output
  lint-po-args doctor -o json`,
		Args: cobra.NoArgs,
		RunE: runDoctor,
	}
}

func runDoctor(cmd *cobra.Command, args []string) error {
	outputFmt, _ := cmd.Flags().GetString("output")
	checks := polint.RunDoctor()

	allRequired := true
	for _, c := range checks {
		if c.Required && !c.OK {
			allRequired = false
			break
		}
	}

	if outputFmt == "json" {
		out, err := polint.FormatDoctorJSON(checks)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		if !allRequired {
			return fmt.Errorf("some required commands are missing")
		}
		return nil
	}

	// text output
	w := cmd.ErrOrStderr()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s╔══════════════════════════════════════════════╗%s\n", polint.ColorCyan, polint.ColorReset)
	fmt.Fprintf(w, "%s║          lint-po-args doctor                 ║%s\n", polint.ColorCyan, polint.ColorReset)
	fmt.Fprintf(w, "%s╚══════════════════════════════════════════════╝%s\n", polint.ColorCyan, polint.ColorReset)
	fmt.Fprintln(w)

	allOK := true
	for _, c := range checks {
		if c.OK {
			fmt.Fprintf(w, "  %s✓%s  %-12s %s (%s)\n", polint.ColorGreen, polint.ColorReset, c.Name, c.Version, c.Path)
		} else {
			marker := "✗"
			color := polint.ColorRed
			label := "MISSING (required)"
			if !c.Required {
				label = "not found (optional)"
				color = polint.ColorYellow
			} else {
				allOK = false
			}
			fmt.Fprintf(w, "  %s%s%s  %-12s %s\n", color, marker, polint.ColorReset, c.Name, label)
		}
	}
	fmt.Fprintln(w)

	if !allOK {
		return fmt.Errorf("some required commands are missing. Install them and try again")
	}
	fmt.Fprintln(w, "All checks passed.")
	return nil
}
