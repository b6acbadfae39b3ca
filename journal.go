package polint

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// StateDir returns the project state directory.
func StateDir(dir string) string {
	return filepath.Join(dir, ".lint-po-args")
}

// HistoryDBPath returns the path of the run history database.
func HistoryDBPath(dir string) string {
	return filepath.Join(StateDir(dir), "history.db")
}

// EnsureStateDir creates .lint-po-args/ and keeps the database out of
// version control.
func EnsureStateDir(dir string) error {
	state := StateDir(dir)
	if err := os.MkdirAll(state, 0755); err != nil {
		return err
	}

	// Ensure history.db is gitignored (handles both fresh and upgrade scenarios)
	gitignore := filepath.Join(state, ".gitignore")
	content, err := os.ReadFile(gitignore)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		// File doesn't exist — create with history.db*
		return os.WriteFile(gitignore, []byte("history.db*\n"), 0644)
	}
	if !strings.Contains(string(content), "history.db*") {
		// Existing file from older version — append history.db*
		f, err := os.OpenFile(gitignore, os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		// Ensure the entry starts on its own line
		if len(content) > 0 && content[len(content)-1] != '\n' {
			f.WriteString("\n")
		}
		f.WriteString("history.db*\n")
	}
	return nil
}

// Journal records lint runs in a SQLite database under the project
// state directory.
type Journal struct {
	db *sql.DB
}

// RunRecord is one recorded lint run.
type RunRecord struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Files     int       `json:"files"`
	Entries   int       `json:"entries"`
	Issues    int       `json:"issues"`
	Failed    int       `json:"failed"`
	Printf    bool      `json:"printf"`
}

const journalSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	started_at INTEGER NOT NULL,
	files      INTEGER NOT NULL,
	entries    INTEGER NOT NULL,
	issues     INTEGER NOT NULL,
	failed     INTEGER NOT NULL,
	printf     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_started_at ON runs (started_at);
`

// OpenJournal opens the run history database, creating the state
// directory and schema on first use.
func OpenJournal(ctx context.Context, dir string) (*Journal, error) {
	if err := EnsureStateDir(dir); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", HistoryDBPath(dir))
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, journalSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// RecordRun stores the summary of one lint run and returns the stored record.
func (j *Journal) RecordRun(ctx context.Context, sum Summary, opts Options) (RunRecord, error) {
	rec := RunRecord{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC().Truncate(time.Second),
		Files:     sum.Files,
		Entries:   sum.Entries,
		Issues:    sum.Issues,
		Failed:    sum.Failed,
		Printf:    opts.LintPrintf,
	}
	printf := 0
	if rec.Printf {
		printf = 1
	}
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, files, entries, issues, failed, printf)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.StartedAt.Unix(), rec.Files, rec.Entries, rec.Issues, rec.Failed, printf)
	if err != nil {
		return RunRecord{}, fmt.Errorf("record run: %w", err)
	}
	return rec, nil
}

// RecentRuns returns up to limit runs, newest first.
func (j *Journal) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := j.db.QueryContext(ctx,
		`SELECT id, started_at, files, entries, issues, failed, printf
		 FROM runs ORDER BY started_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []RunRecord
	for rows.Next() {
		var rec RunRecord
		var ts int64
		var printf int
		if err := rows.Scan(&rec.ID, &ts, &rec.Files, &rec.Entries, &rec.Issues, &rec.Failed, &printf); err != nil {
			return nil, err
		}
		rec.StartedAt = time.Unix(ts, 0).UTC()
		rec.Printf = printf != 0
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

// FormatRunsTable returns runs as a human-readable aligned table.
func FormatRunsTable(runs []RunRecord) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%-36s  %-19s %6s %8s %7s %7s  %s", "RUN", "DATE", "FILES", "ENTRIES", "ISSUES", "FAILED", "PRINTF")
	for _, r := range runs {
		printf := "off"
		if r.Printf {
			printf = "on"
		}
		fmt.Fprintf(&sb, "\n%-36s  %-19s %6d %8d %7d %7d  %s",
			r.ID, r.StartedAt.Format("2006-01-02 15:04:05"), r.Files, r.Entries, r.Issues, r.Failed, printf)
	}
	return sb.String()
}

// FormatRunsJSON returns runs as a JSON array string.
func FormatRunsJSON(runs []RunRecord) (string, error) {
	data, err := json.Marshal(runs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// FormatRunsJSONL returns runs as JSONL (one JSON object per line).
func FormatRunsJSONL(runs []RunRecord) string {
	if len(runs) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, r := range runs {
		data, err := json.Marshal(r)
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
