package polint

import (
	"context"
	"fmt"
	"time"
)

// PruneResult holds the outcome of a journal prune operation.
type PruneResult struct {
	Candidates []string // IDs of runs older than the threshold
	Deleted    int      // number of runs actually removed (0 in dry-run)
}

// PruneRuns scans the journal for runs recorded more than the given
// number of days ago. When execute is false (dry-run), it only lists
// candidates. When execute is true, it deletes them and reports how
// many were removed.
func (j *Journal) PruneRuns(ctx context.Context, days int, execute bool) (PruneResult, error) {
	if days <= 0 {
		return PruneResult{}, fmt.Errorf("days must be positive, got %d", days)
	}
	threshold := time.Now().Add(-time.Duration(days) * 24 * time.Hour).Unix()

	rows, err := j.db.QueryContext(ctx,
		`SELECT id FROM runs WHERE started_at < ? ORDER BY started_at, id`, threshold)
	if err != nil {
		return PruneResult{}, err
	}
	var result PruneResult
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return PruneResult{}, err
		}
		result.Candidates = append(result.Candidates, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return PruneResult{}, err
	}
	rows.Close()

	if execute && len(result.Candidates) > 0 {
		res, err := j.db.ExecContext(ctx, `DELETE FROM runs WHERE started_at < ?`, threshold)
		if err != nil {
			return result, err
		}
		if n, err := res.RowsAffected(); err == nil {
			result.Deleted = int(n)
		}
	}

	return result, nil
}
