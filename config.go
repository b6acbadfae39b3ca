package polint

// Config holds the settings for one lint run. It is assembled by the CLI
// from flags and the project config file and passed around as a value;
// nothing in here is global state.
type Config struct {
	Paths        []string // catalog files to check, in argument order
	LintPrintf   bool     // also compare printf-style directives
	ShowEntries  bool     // print every parsed entry before the findings
	Jobs         int      // max catalogs checked concurrently (<=0: one per CPU)
	Journal      bool     // record the run in the history journal
	Dir          string   // project directory for config and journal
	OutputFormat string   // text, json or jsonl
}
