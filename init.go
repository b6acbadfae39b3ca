package polint

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// RunInitWithReader executes the init flow reading input from r.
// This is separated from the init command for testability.
func RunInitWithReader(dir string, r io.Reader) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	if err := EnsureStateDir(absPath); err != nil {
		return fmt.Errorf("state dir: %w", err)
	}

	scanner := bufio.NewScanner(r)

	fmt.Fprint(os.Stderr, "Check printf-style directives by default? [y/N]: ")
	var printf bool
	if scanner.Scan() {
		printf = isYes(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Fprint(os.Stderr, "Record runs in the history journal? [y/N]: ")
	var journal bool
	if scanner.Scan() {
		journal = isYes(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	cfg := &ProjectConfig{
		Lint:    LintConfig{Printf: printf},
		Journal: JournalConfig{Enabled: journal},
	}

	if err := SaveProjectConfig(absPath, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n"+Msg("config_saved")+"\n", ProjectConfigPath(absPath))
	fmt.Fprintf(os.Stderr, "  printf check: %v\n", printf)
	fmt.Fprintf(os.Stderr, "  journal:      %v\n", journal)
	return nil
}

func isYes(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "y" || s == "yes"
}
