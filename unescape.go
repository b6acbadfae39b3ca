package polint

import (
	"errors"
	"fmt"
)

// escapes maps the escape letters recognised inside quoted segments.
// PO files use C-style escapes; only the ones the linter needs are decoded.
var escapes = map[rune]rune{
	't':  '\t',
	'n':  '\n',
	'\\': '\\',
	'"':  '"',
}

// Unescape decodes the quoted part of a catalog line: one or more
// double-quoted segments whose contents are concatenated, so `"foo""bar"`
// decodes to "foobar". The quotes themselves are never part of the result.
//
// Any character outside a quoted segment, an unknown escape sequence, an
// unterminated segment, or a dangling backslash is an error. The caller is
// expected to wrap the error with the line number.
func Unescape(line string) (string, error) {
	var out []rune
	inQuotes := false
	escaping := false

	for _, r := range line {
		if escaping {
			escaping = false
			repl, ok := escapes[r]
			if !ok {
				return "", fmt.Errorf("unknown escape sequence \\%c", r)
			}
			out = append(out, repl)
			continue
		}
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			return "", fmt.Errorf("character %q outside double quotes", r)
		}
		if r == '\\' {
			escaping = true
			continue
		}
		out = append(out, r)
	}

	if inQuotes {
		return "", errors.New("quoted string not terminated")
	}
	if escaping {
		return "", errors.New("unfinished escape sequence at end of line")
	}
	return string(out), nil
}
