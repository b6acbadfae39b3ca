package polint

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Finding is one flagged translation, flattened for output.
type Finding struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	Reason string `json:"reason"`
	MsgID  string `json:"msgid"`
	MsgStr string `json:"msgstr"`
}

// EntryView is a parsed entry tagged with its file, for the entries
// listing and --show-entries.
type EntryView struct {
	File   string `json:"file"`
	Line   int    `json:"line"`
	MsgID  string `json:"msgid"`
	MsgStr string `json:"msgstr"`
}

// Summary aggregates a run's results for logging and the journal.
type Summary struct {
	Files   int `json:"files"`
	Entries int `json:"entries"`
	Issues  int `json:"issues"`
	Failed  int `json:"failed"`
}

// Findings flattens results into output records, keeping file order and
// entry order. Results that failed to parse contribute nothing here;
// their errors are reported separately.
func Findings(results []FileResult) []Finding {
	findings := make([]Finding, 0)
	for _, r := range results {
		for _, is := range r.Issues {
			findings = append(findings, Finding{
				File:   r.Path,
				Line:   is.Entry.Line,
				Reason: is.Reason,
				MsgID:  is.Entry.MsgID,
				MsgStr: is.Entry.MsgStr,
			})
		}
	}
	return findings
}

// EntryViews flattens parsed entries into output records, keeping file
// order and entry order.
func EntryViews(results []FileResult) []EntryView {
	views := make([]EntryView, 0)
	for _, r := range results {
		for _, e := range r.Entries {
			views = append(views, EntryView{File: r.Path, Line: e.Line, MsgID: e.MsgID, MsgStr: e.MsgStr})
		}
	}
	return views
}

// Summarize counts files, entries, issues and failures across results.
func Summarize(results []FileResult) Summary {
	s := Summary{Files: len(results)}
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		s.Entries += len(r.Entries)
		s.Issues += len(r.Issues)
	}
	return s
}

// FormatFindingsText renders findings the way grep reports matches:
// file:line: reason, with the offending strings indented below.
func FormatFindingsText(findings []Finding) string {
	lines := make([]string, 0, len(findings)*3)
	for _, f := range findings {
		lines = append(lines,
			fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Reason),
			fmt.Sprintf("    msgid  = %s", f.MsgID),
			fmt.Sprintf("    msgstr = %s", f.MsgStr),
		)
	}
	return strings.Join(lines, "\n")
}

// FormatFindingsJSON returns findings as a JSON array string.
func FormatFindingsJSON(findings []Finding) (string, error) {
	data, err := json.Marshal(findings)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatFindingsJSONL returns findings as JSONL (one JSON object per line).
func FormatFindingsJSONL(findings []Finding) string {
	if len(findings) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, f := range findings {
		data, err := json.Marshal(f)
		if err != nil {
			continue
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(data)
	}
	return sb.String()
}

// FormatEntriesText renders parsed entries for parser debugging, one
// block per entry.
func FormatEntriesText(views []EntryView) string {
	lines := make([]string, 0, len(views)*3)
	for _, v := range views {
		lines = append(lines,
			fmt.Sprintf("%s:%d:", v.File, v.Line),
			"    "+v.MsgID,
			"    "+v.MsgStr,
		)
	}
	return strings.Join(lines, "\n")
}

// FormatEntriesJSON returns entry views as a JSON array string.
func FormatEntriesJSON(views []EntryView) (string, error) {
	data, err := json.Marshal(views)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatEntriesJSONL returns entry views as JSONL.
func FormatEntriesJSONL(views []EntryView) string {
	if len(views) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, v := range views {
		data, err := json.Marshal(v)
		if err != nil {
			continue
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(data)
	}
	return sb.String()
}
