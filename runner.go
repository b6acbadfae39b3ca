package polint

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/alitto/pond/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// FileResult is the outcome of checking a single catalog. Err is set when
// the file could not be read or parsed; Entries and Issues are only valid
// when Err is nil.
type FileResult struct {
	Path    string
	Entries []Entry
	Issues  []Issue
	Err     error
}

// CheckFile reads, parses and lints one catalog. A parse failure is
// reported in the result, never as a panic or partial entry list.
func CheckFile(ctx context.Context, path string, opts Options) FileResult {
	ctx, span := tracer.Start(ctx, "polint.check_file",
		trace.WithAttributes(attribute.String("catalog.path", path)))
	defer span.End()

	res := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		span.RecordError(err)
		res.Err = err
		return res
	}

	entries, err := ParseCatalog(string(data))
	if err != nil {
		span.RecordError(err)
		res.Err = fmt.Errorf("%s: %w", path, err)
		return res
	}

	res.Entries = entries
	res.Issues = Lint(entries, opts)

	span.SetAttributes(
		attribute.Int("catalog.entries", len(res.Entries)),
		attribute.Int("catalog.issues", len(res.Issues)),
	)
	catalogsChecked.Add(ctx, 1)
	entriesParsed.Add(ctx, int64(len(res.Entries)))
	issuesFound.Add(ctx, int64(len(res.Issues)))

	return res
}

// CheckFiles checks all configured catalogs, cfg.Jobs at a time, and
// returns one result per path in input order. Each file is an isolated
// pipeline run: a malformed catalog fails its own result and nothing else.
func CheckFiles(ctx context.Context, cfg Config) []FileResult {
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	opts := Options{LintPrintf: cfg.LintPrintf}

	results := make([]FileResult, len(cfg.Paths))
	pool := pond.NewPool(jobs, pond.WithContext(ctx))
	for i, path := range cfg.Paths {
		pool.Submit(func() {
			results[i] = CheckFile(ctx, path, opts)
		})
	}
	pool.StopAndWait()

	return results
}

// Outcome reduces results to a process exit code: 2 when any catalog
// could not be checked, 1 when any finding was reported, 0 otherwise.
func Outcome(results []FileResult) int {
	code := 0
	for _, r := range results {
		if r.Err != nil {
			return 2
		}
		if len(r.Issues) > 0 {
			code = 1
		}
	}
	return code
}
