package cmd

import (
	polint "github.com/BenWiederhake/lint-po-args"
	"github.com/spf13/cobra"
)

func init() {
	cobra.EnableTraverseRunHooks = true
}

// NewRootCommand creates and returns the root cobra command for lint-po-args.
// Exported for testability (SetArgs/SetOut) and future docgen.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lint-po-args",
		Short:   "Linter for gettext .po translation catalogs",
		Long:    "lint-po-args checks .po catalogs for translations that drop or mangle command-line options and printf directives.",
		Version: Version,
		// Silence usage on RunE errors (cobra prints usage by default on error)
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Set language and verbosity globals before any subcommand runs
			lang, _ := cmd.Flags().GetString("lang")
			if lang == "en" || lang == "de" || lang == "fr" {
				polint.Lang = lang
			}
			polint.Verbose, _ = cmd.Flags().GetBool("verbose")
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "text", "Output format: text, json, jsonl")
	rootCmd.PersistentFlags().StringP("lang", "l", "en", "Output language: en, de, fr")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Project config file (default <dir>/.lint-po-args.yaml)")

	rootCmd.AddCommand(
		newCheckCommand(),
		newEntriesCommand(),
		newWatchCommand(),
		newHistoryCommand(),
		newPruneCommand(),
		newInitCommand(),
		newDoctorCommand(),
		newVersionCommand(),
		newUpdateCommand(),
	)

	return rootCmd
}

// projectConfig loads the project config for dir, honoring the --config
// override. With --config, a missing file is an error; without it, a
// missing .lint-po-args.yaml just yields defaults.
func projectConfig(cmd *cobra.Command, dir string) (*polint.ProjectConfig, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return polint.LoadProjectConfigFile(path)
	}
	return polint.LoadProjectConfig(dir)
}
