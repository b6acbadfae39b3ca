package polint

import (
	"reflect"
	"strings"
	"testing"
)

func TestFlagTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"mixed prose", "-foo bar --baz and %quux the -4", []string{"-foo", "--baz", "-4"}},
		{"hyphenated word is not a flag", "well-known -4 --baz", []string{"-4", "--baz"}},
		{"flag at start of string", "-v prints more", []string{"-v"}},
		{"flag after punctuation", "use (-x) or !-y", []string{"-x", "-y"}},
		{"consecutive flags", "-a -b", []string{"-a", "-b"}},
		{"long flag with inner dashes", "try --dry-run now", []string{"--dry-run"}},
		{"digit flag", "gzip -9 file", []string{"-9"}},
		{"width prefix after percent", "pad with %-4d", []string{"-4d"}},
		{"bare dash is nothing", "a - b", nil},
		{"no flags at all", "plain text only", nil},
		{"duplicates kept", "-a twice -a", []string{"-a", "-a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlagTokens(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FlagTokens(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"mixed prose", "-foo bar --baz and %quux the -4", []string{"%quux"}},
		{"plain directive", "%d files", []string{"%d"}},
		{"width and flags", "%-4s %+3d", []string{"%-4s", "%+3d"}},
		{"several directives keep order", "%s of %d", []string{"%s", "%d"}},
		{"no directives", "just text", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatTokens(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormatTokens(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLint_FlagMismatchFlagged(t *testing.T) {
	// given: the classic -0 versus -O typo
	entries := []Entry{
		{MsgID: "please use the -0 option", MsgStr: "bitte nutze die -O Option", Line: 3},
	}

	// when
	issues := Lint(entries, Options{})

	// then
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	is := issues[0]
	if is.Entry.Line != 3 {
		t.Errorf("issue entry line = %d, want 3", is.Entry.Line)
	}
	if !strings.Contains(is.Reason, "command-line options") {
		t.Errorf("reason should name the token class, got: %s", is.Reason)
	}
	if !strings.Contains(is.Reason, "-0") || !strings.Contains(is.Reason, "-O") {
		t.Errorf("reason should cite both token sequences, got: %s", is.Reason)
	}
}

func TestLint_MatchingTokensPass(t *testing.T) {
	// given
	entries := []Entry{
		{MsgID: "use -v or --verbose", MsgStr: "nutze -v oder --verbose", Line: 1},
		{MsgID: "plain text", MsgStr: "einfacher Text", Line: 4},
	}

	// when
	issues := Lint(entries, Options{})

	// then
	if len(issues) != 0 {
		t.Errorf("got %d issues, want 0: %v", len(issues), issues)
	}
}

func TestLint_EmptyMsgstrSkipped(t *testing.T) {
	// given: untranslated entry with flags that could never match
	entries := []Entry{
		{MsgID: "use the -0 option", MsgStr: "", Line: 1},
	}

	// when
	issues := Lint(entries, Options{})

	// then
	if len(issues) != 0 {
		t.Errorf("untranslated entries must not be flagged, got: %v", issues)
	}
}

func TestLint_OrderAndMultiplicityCount(t *testing.T) {
	tests := []struct {
		name       string
		msgid      string
		msgstr     string
		wantIssues int
	}{
		{"swapped order", "-a then -b", "-b dann -a", 1},
		{"dropped duplicate", "-a and -a", "-a", 1},
		{"extra duplicate", "-a", "-a und -a", 1},
		{"same order same count", "-a then -b", "erst -a dann -b", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := []Entry{{MsgID: tt.msgid, MsgStr: tt.msgstr, Line: 1}}
			issues := Lint(entries, Options{})
			if len(issues) != tt.wantIssues {
				t.Errorf("got %d issues, want %d: %v", len(issues), tt.wantIssues, issues)
			}
		})
	}
}

func TestLint_PrintfOffByDefault(t *testing.T) {
	// given: printf mismatch only
	entries := []Entry{
		{MsgID: "%d files", MsgStr: "%s Dateien", Line: 1},
	}

	// when
	issues := Lint(entries, Options{})

	// then
	if len(issues) != 0 {
		t.Errorf("printf check must be opt-in, got: %v", issues)
	}
}

func TestLint_PrintfMismatchFlaggedWhenEnabled(t *testing.T) {
	// given
	entries := []Entry{
		{MsgID: "%d files", MsgStr: "%s Dateien", Line: 7},
	}

	// when
	issues := Lint(entries, Options{LintPrintf: true})

	// then
	if len(issues) != 1 {
		t.Fatalf("got %d issues, want 1", len(issues))
	}
	if !strings.Contains(issues[0].Reason, "printf") {
		t.Errorf("reason should name the token class, got: %s", issues[0].Reason)
	}
	if !strings.Contains(issues[0].Reason, "%d") || !strings.Contains(issues[0].Reason, "%s") {
		t.Errorf("reason should cite both token sequences, got: %s", issues[0].Reason)
	}
}

func TestLint_FlagIssuePrecedesPrintfIssue(t *testing.T) {
	// given: one entry broken both ways
	entries := []Entry{
		{MsgID: "-n limits to %d", MsgStr: "-m begrenzt auf %s", Line: 1},
	}

	// when
	issues := Lint(entries, Options{LintPrintf: true})

	// then
	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2", len(issues))
	}
	if !strings.Contains(issues[0].Reason, "command-line options") {
		t.Errorf("first issue should be the option mismatch, got: %s", issues[0].Reason)
	}
	if !strings.Contains(issues[1].Reason, "printf") {
		t.Errorf("second issue should be the printf mismatch, got: %s", issues[1].Reason)
	}
}

func TestLint_IssuesFollowEntryOrder(t *testing.T) {
	// given
	entries := []Entry{
		{MsgID: "-a", MsgStr: "-b", Line: 1},
		{MsgID: "fine", MsgStr: "gut", Line: 3},
		{MsgID: "-c", MsgStr: "-d", Line: 5},
	}

	// when
	issues := Lint(entries, Options{})

	// then
	if len(issues) != 2 {
		t.Fatalf("got %d issues, want 2", len(issues))
	}
	if issues[0].Entry.Line != 1 || issues[1].Entry.Line != 5 {
		t.Errorf("issue order = [%d %d], want [1 5]", issues[0].Entry.Line, issues[1].Entry.Line)
	}
}
