package sqlite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cortexscaffold/cortexscaffold/ports"
)

// RunStore implements ports.RunStore using SQLite.
type RunStore struct {
	db *DB
}

// NewRunStore creates a new SQLite run store.
func NewRunStore(db *DB) *RunStore {
	return &RunStore{db: db}
}

// Record stores one scaffold run.
func (s *RunStore) Record(ctx context.Context, run ports.Run) error {
	modules, err := json.Marshal(run.Modules)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, name, slug, package, path, modules, artifacts, status, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Name, run.Slug, run.Package, run.Path, string(modules),
		run.Artifacts, run.Status, run.Error, run.Duration.Milliseconds(), run.CreatedAt)
	return err
}

// Recent returns up to limit runs, newest first.
func (s *RunStore) Recent(ctx context.Context, limit int) ([]ports.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, slug, package, path, modules, artifacts, status, error, duration_ms, created_at
		FROM runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []ports.Run
	for rows.Next() {
		var r ports.Run
		var modules string
		var durationMS int64

		err := rows.Scan(
			&r.ID, &r.Name, &r.Slug, &r.Package, &r.Path, &modules,
			&r.Artifacts, &r.Status, &r.Error, &durationMS, &r.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if modules != "" && modules != "null" {
			if err := json.Unmarshal([]byte(modules), &r.Modules); err != nil {
				return nil, err
			}
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond

		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Ensure interface compliance.
var _ ports.RunStore = (*RunStore)(nil)
