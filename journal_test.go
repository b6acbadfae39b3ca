package polint

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestStateDir(t *testing.T) {
	p := StateDir("/some/project")
	want := filepath.Join("/some/project", ".lint-po-args")
	if p != want {
		t.Errorf("StateDir = %q, want %q", p, want)
	}
}

func TestHistoryDBPath(t *testing.T) {
	p := HistoryDBPath("/some/project")
	want := filepath.Join("/some/project", ".lint-po-args", "history.db")
	if p != want {
		t.Errorf("HistoryDBPath = %q, want %q", p, want)
	}
}

func TestEnsureStateDir_CreatesDirAndGitignore(t *testing.T) {
	dir := t.TempDir()

	if err := EnsureStateDir(dir); err != nil {
		t.Fatalf("EnsureStateDir: %v", err)
	}

	if _, err := os.Stat(StateDir(dir)); os.IsNotExist(err) {
		t.Error("state dir should be created")
	}
	content, err := os.ReadFile(filepath.Join(StateDir(dir), ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), "history.db*") {
		t.Errorf("gitignore should cover history.db*, got %q", string(content))
	}
}

func TestEnsureStateDir_AppendsToExistingGitignore(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(StateDir(dir), 0755)
	gitignore := filepath.Join(StateDir(dir), ".gitignore")
	// No trailing newline on purpose
	os.WriteFile(gitignore, []byte("old-entry"), 0644)

	if err := EnsureStateDir(dir); err != nil {
		t.Fatalf("EnsureStateDir: %v", err)
	}

	content, err := os.ReadFile(gitignore)
	if err != nil {
		t.Fatal(err)
	}
	s := string(content)
	if !strings.Contains(s, "old-entry") {
		t.Errorf("existing entries should survive, got %q", s)
	}
	if !strings.Contains(s, "\nhistory.db*\n") {
		t.Errorf("history.db* should be appended on its own line, got %q", s)
	}
}

func TestEnsureStateDir_Idempotent(t *testing.T) {
	dir := t.TempDir()

	if err := EnsureStateDir(dir); err != nil {
		t.Fatal(err)
	}
	if err := EnsureStateDir(dir); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(filepath.Join(StateDir(dir), ".gitignore"))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(content), "history.db*"); got != 1 {
		t.Errorf("gitignore should contain the entry once, got %d times: %q", got, string(content))
	}
}

func TestOpenJournal_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	defer j.Close()

	// Schema creation touches the file
	if _, err := os.Stat(HistoryDBPath(dir)); os.IsNotExist(err) {
		t.Error("history database should be created")
	}
}

func TestRecordRun_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	sum := Summary{Files: 3, Entries: 42, Issues: 2, Failed: 1}
	rec, err := j.RecordRun(ctx, sum, Options{LintPrintf: true})
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if rec.ID == "" {
		t.Error("record should get an ID")
	}

	runs, err := j.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != rec.ID {
		t.Errorf("ID = %q, want %q", got.ID, rec.ID)
	}
	if got.Files != 3 || got.Entries != 42 || got.Issues != 2 || got.Failed != 1 {
		t.Errorf("counts = %d/%d/%d/%d, want 3/42/2/1", got.Files, got.Entries, got.Issues, got.Failed)
	}
	if !got.Printf {
		t.Error("Printf flag should round-trip")
	}
	if got.StartedAt.IsZero() {
		t.Error("StartedAt should be set")
	}
}

func TestRecordRun_AssignsUniqueIDs(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		rec, err := j.RecordRun(ctx, Summary{Files: 1}, Options{})
		if err != nil {
			t.Fatal(err)
		}
		if seen[rec.ID] {
			t.Fatalf("duplicate run ID %q", rec.ID)
		}
		seen[rec.ID] = true
	}
}

// backdateRun shifts a stored run's timestamp for age-based tests.
func backdateRun(t *testing.T, j *Journal, id string, age time.Duration) {
	t.Helper()
	ts := time.Now().Add(-age).Unix()
	if _, err := j.db.Exec(`UPDATE runs SET started_at = ? WHERE id = ?`, ts, id); err != nil {
		t.Fatalf("backdate run: %v", err)
	}
}

func TestRecentRuns_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	oldRec, err := j.RecordRun(ctx, Summary{Files: 1}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	newRec, err := j.RecordRun(ctx, Summary{Files: 2}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	backdateRun(t, j, oldRec.ID, 48*time.Hour)

	runs, err := j.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != newRec.ID {
		t.Errorf("runs[0] = %q, want newest %q", runs[0].ID, newRec.ID)
	}
	if runs[1].ID != oldRec.ID {
		t.Errorf("runs[1] = %q, want oldest %q", runs[1].ID, oldRec.ID)
	}
}

func TestRecentRuns_Limit(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	for i := 0; i < 5; i++ {
		if _, err := j.RecordRun(ctx, Summary{Files: 1}, Options{}); err != nil {
			t.Fatal(err)
		}
	}

	runs, err := j.RecentRuns(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs with limit 3, got %d", len(runs))
	}
}

func TestRecentRuns_EmptyJournal(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	runs, err := j.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestOpenJournal_Reopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := j.RecordRun(ctx, Summary{Files: 1, Entries: 7}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if err := j.Close(); err != nil {
		t.Fatal(err)
	}

	j2, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer j2.Close()

	runs, err := j2.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != rec.ID {
		t.Errorf("runs after reopen = %v, want the recorded run to persist", runs)
	}
}

func TestFormatRunsTable(t *testing.T) {
	runs := []RunRecord{
		{ID: "run-1", StartedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC), Files: 2, Entries: 10, Issues: 1, Printf: true},
	}

	got := FormatRunsTable(runs)
	if !containsStr(got, "RUN") || !containsStr(got, "ISSUES") {
		t.Errorf("table should have a header, got %q", got)
	}
	if !containsStr(got, "run-1") {
		t.Errorf("table should list the run, got %q", got)
	}
	if !containsStr(got, "2026-08-01 12:00:00") {
		t.Errorf("table should show the date, got %q", got)
	}
	if !containsStr(got, "on") {
		t.Errorf("table should show the printf mode, got %q", got)
	}
}

func TestFormatRunsJSON(t *testing.T) {
	runs := []RunRecord{{ID: "run-1", Files: 1}}

	got, err := FormatRunsJSON(runs)
	if err != nil {
		t.Fatal(err)
	}
	if !containsStr(got, `"id":"run-1"`) {
		t.Errorf("JSON should contain the run ID, got %q", got)
	}
}

func TestFormatRunsJSONL_Empty(t *testing.T) {
	if got := FormatRunsJSONL(nil); got != "" {
		t.Errorf("empty runs should produce empty JSONL, got %q", got)
	}
}

func TestFormatRunsJSONL_OneObjectPerLine(t *testing.T) {
	runs := []RunRecord{{ID: "a"}, {ID: "b"}}

	got := FormatRunsJSONL(runs)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), got)
	}
	if !containsStr(lines[0], `"a"`) || !containsStr(lines[1], `"b"`) {
		t.Errorf("lines should hold one run each, got %q", got)
	}
}
