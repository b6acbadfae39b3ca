package polint

import (
	"fmt"
	"regexp"
)

// Options configures Lint.
type Options struct {
	// LintPrintf also compares printf-style directives. The pattern is a
	// loose heuristic with false positives (literal percent signs), so
	// this check is opt-in.
	LintPrintf bool
}

// Issue flags one entry whose translation disagrees with its source.
type Issue struct {
	Entry  Entry  `json:"entry"`
	Reason string `json:"reason"`
}

var (
	// %d, %-4s, %2$s and the like. Deliberately loose.
	printfPattern = regexp.MustCompile(`%[0-9a-zA-Z+-]+`)

	// A flag token is a '-' run of word characters not glued to a
	// preceding word, so "well-known" is one word while "-4" and
	// "--baz" are flags. regexp has no lookbehind; the leading
	// context is captured and discarded instead.
	flagPattern = regexp.MustCompile(`(^|[^0-9a-zA-Z_-])(-[0-9a-zA-Z_-]+)`)
)

// FlagTokens returns the command-line option tokens in s, in order of
// appearance, duplicates included.
func FlagTokens(s string) []string {
	matches := flagPattern.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, m[2])
	}
	return tokens
}

// FormatTokens returns the printf-like directives in s, in order of
// appearance, duplicates included.
func FormatTokens(s string) []string {
	return printfPattern.FindAllString(s, -1)
}

func sameTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Lint flags entries whose command-line options differ between msgid and
// msgstr, and with Options.LintPrintf also entries whose printf directives
// differ. Token order and multiplicity both count: "-a -b" versus "-b -a"
// is a mismatch. Untranslated entries (empty msgstr) are skipped.
//
// Issues come back in entry order; within one entry the option issue
// precedes the printf issue.
func Lint(entries []Entry, opts Options) []Issue {
	var issues []Issue
	for _, e := range entries {
		if e.MsgStr == "" {
			// Missing translations are msgfmt's business, not ours.
			continue
		}

		idFlags := FlagTokens(e.MsgID)
		strFlags := FlagTokens(e.MsgStr)
		if !sameTokens(idFlags, strFlags) {
			issues = append(issues, Issue{
				Entry:  e,
				Reason: fmt.Sprintf("mismatching mentions of command-line options: %v (in msgid) versus %v (in msgstr)", idFlags, strFlags),
			})
		}

		if opts.LintPrintf {
			idFmts := FormatTokens(e.MsgID)
			strFmts := FormatTokens(e.MsgStr)
			if !sameTokens(idFmts, strFmts) {
				issues = append(issues, Issue{
					Entry:  e,
					Reason: fmt.Sprintf("mismatching printf instructions: %v (in msgid) versus %v (in msgstr)", idFmts, strFmts),
				})
			}
		}
	}
	return issues
}
