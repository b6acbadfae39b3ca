package polint

import (
	"fmt"
	"strings"
)

// Entry is one msgid/msgstr pair from a catalog, fully decoded.
// Line is the 1-based line number of the msgid keyword line.
type Entry struct {
	MsgID  string `json:"msgid"`
	MsgStr string `json:"msgstr"`
	Line   int    `json:"line"`
}

// ParseError reports a malformed catalog. Line is 1-based.
// Parsing stops at the first error; no partial entry list is returned.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// parseState tracks which half of an entry is being accumulated.
type parseState int

const (
	stateAwaitingEntry parseState = iota // before the first msgid
	stateInMsgID                         // msgid seen, collecting source segments
	stateInMsgStr                        // msgstr seen, collecting translation segments
)

// ParseCatalog parses PO catalog data into entries, in file order.
//
// The grammar is deliberately strict: blank lines and `#` comments are
// skipped, everything else must be a msgid line, a msgstr line, or a
// quoted continuation of the current one. Plural forms, obsolete entries
// and other keywords are rejected rather than guessed at. A file that
// yields no entries at all is an error, never an empty catalog.
func ParseCatalog(data string) ([]Entry, error) {
	var (
		entries   []Entry
		state     = stateAwaitingEntry
		firstLine int
		msgid     strings.Builder
		msgstr    strings.Builder
	)

	lines := strings.Split(data, "\n")
	for i, line := range lines {
		lineno := i + 1
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if state == stateAwaitingEntry && !strings.HasPrefix(line, "msgid ") {
			return nil, &ParseError{lineno, "expected beginning of msgid"}
		}

		switch {
		case strings.HasPrefix(line, "msgid "):
			switch state {
			case stateInMsgID:
				return nil, &ParseError{lineno, fmt.Sprintf("new msgid, but entry from line %d has no msgstr", firstLine)}
			case stateInMsgStr:
				entries = append(entries, Entry{msgid.String(), msgstr.String(), firstLine})
				msgid.Reset()
				msgstr.Reset()
			}
			state = stateInMsgID
			firstLine = lineno
			rest := strings.TrimPrefix(line, "msgid ")
			if !strings.HasPrefix(rest, `"`) {
				return nil, &ParseError{lineno, "msgid is not followed by a quoted string"}
			}
			decoded, err := Unescape(rest)
			if err != nil {
				return nil, &ParseError{lineno, err.Error()}
			}
			msgid.WriteString(decoded)

		case strings.HasPrefix(line, "msgstr "):
			if state != stateInMsgID {
				return nil, &ParseError{lineno, fmt.Sprintf("msgstr, but entry from line %d already has one", firstLine)}
			}
			state = stateInMsgStr
			decoded, err := Unescape(strings.TrimPrefix(line, "msgstr "))
			if err != nil {
				return nil, &ParseError{lineno, err.Error()}
			}
			msgstr.WriteString(decoded)

		default:
			// Continuation line for whichever half is open.
			decoded, err := Unescape(line)
			if err != nil {
				return nil, &ParseError{lineno, err.Error()}
			}
			if state == stateInMsgID {
				msgid.WriteString(decoded)
			} else {
				msgstr.WriteString(decoded)
			}
		}
	}

	switch state {
	case stateAwaitingEntry:
		return nil, &ParseError{len(lines), "catalog contains no entries"}
	case stateInMsgID:
		return nil, &ParseError{len(lines), fmt.Sprintf("end of file, but entry from line %d has no msgstr", firstLine)}
	}
	entries = append(entries, Entry{msgid.String(), msgstr.String(), firstLine})

	return entries, nil
}
