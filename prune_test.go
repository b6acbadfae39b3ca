package polint

import (
	"context"
	"testing"
	"time"
)

func TestPruneRuns_InvalidDays(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	for _, days := range []int{0, -1} {
		if _, err := j.PruneRuns(ctx, days, false); err == nil {
			t.Errorf("days=%d should be rejected", days)
		}
	}
}

func TestPruneRuns_EmptyJournal(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	result, err := j.PruneRuns(ctx, 30, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Candidates) != 0 || result.Deleted != 0 {
		t.Errorf("empty journal should yield empty result, got %+v", result)
	}
}

func TestPruneRuns_DryRun_ListsCandidatesOnly(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	oldA, _ := j.RecordRun(ctx, Summary{Files: 1}, Options{})
	oldB, _ := j.RecordRun(ctx, Summary{Files: 1}, Options{})
	recent, _ := j.RecordRun(ctx, Summary{Files: 1}, Options{})
	backdateRun(t, j, oldA.ID, 40*24*time.Hour)
	backdateRun(t, j, oldB.ID, 35*24*time.Hour)

	result, err := j.PruneRuns(ctx, 30, false)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Candidates) != 2 {
		t.Errorf("expected 2 candidates, got %d: %v", len(result.Candidates), result.Candidates)
	}
	if result.Deleted != 0 {
		t.Errorf("dry-run should delete nothing, got %d", result.Deleted)
	}

	// All three runs must still be present
	runs, err := j.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs after dry-run, got %d", len(runs))
	}
	_ = recent
}

func TestPruneRuns_Execute_DeletesOldRuns(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	old, _ := j.RecordRun(ctx, Summary{Files: 1}, Options{})
	recent, _ := j.RecordRun(ctx, Summary{Files: 2}, Options{})
	backdateRun(t, j, old.ID, 40*24*time.Hour)

	result, err := j.PruneRuns(ctx, 30, true)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Candidates) != 1 || result.Candidates[0] != old.ID {
		t.Errorf("candidates = %v, want [%s]", result.Candidates, old.ID)
	}
	if result.Deleted != 1 {
		t.Errorf("expected 1 deleted, got %d", result.Deleted)
	}

	runs, err := j.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != recent.ID {
		t.Errorf("only the recent run should survive, got %v", runs)
	}
}

func TestPruneRuns_SkipsRecentRuns(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	j, err := OpenJournal(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	defer j.Close()

	if _, err := j.RecordRun(ctx, Summary{Files: 1}, Options{}); err != nil {
		t.Fatal(err)
	}

	result, err := j.PruneRuns(ctx, 30, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Candidates) != 0 || result.Deleted != 0 {
		t.Errorf("recent runs should be kept, got %+v", result)
	}
}
