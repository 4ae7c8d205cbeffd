package storage

import (
	"context"
	"time"

	"pomoban/internal/domain"
)

// AddDep records a dependency edge. Re-adding an existing edge returns
// ErrConflict.
func (s *Store) AddDep(ctx context.Context, d domain.Dep) error {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO task_deps (task_id, dep_id, kind, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(task_id, dep_id, kind) DO NOTHING`,
		d.TaskID, d.DepID, d.Kind.String(), d.CreatedAt.Unix())
	if err != nil {
		return &domain.StoreError{Op: "add", Table: "task_deps", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return &domain.StoreError{Op: "add", Table: "task_deps", Err: err}
	}
	if n == 0 {
		return &domain.StoreError{Op: "add", Table: "task_deps", Err: domain.ErrConflict}
	}
	return nil
}

// RemoveDep deletes a dependency edge.
func (s *Store) RemoveDep(ctx context.Context, taskID, depID string, kind domain.DepKind) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM task_deps WHERE task_id = ? AND dep_id = ? AND kind = ?`,
		taskID, depID, kind.String())
	if err != nil {
		return &domain.StoreError{Op: "remove", Table: "task_deps", Err: err}
	}
	return requireRow(res, "remove", "task_deps")
}

// ListDeps returns the edges hanging off one task, oldest first.
func (s *Store) ListDeps(ctx context.Context, taskID string) ([]domain.Dep, error) {
	return s.queryDeps(ctx,
		`SELECT task_id, dep_id, kind, created_at FROM task_deps
		 WHERE task_id = ? ORDER BY created_at ASC, dep_id ASC`, taskID)
}

// ListAllDeps returns every dependency edge, oldest first. Used to walk
// the full graph for cycle checks and blocked markers.
func (s *Store) ListAllDeps(ctx context.Context) ([]domain.Dep, error) {
	return s.queryDeps(ctx,
		`SELECT task_id, dep_id, kind, created_at FROM task_deps
		 ORDER BY created_at ASC, task_id ASC, dep_id ASC`)
}

func (s *Store) queryDeps(ctx context.Context, query string, args ...any) ([]domain.Dep, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, &domain.StoreError{Op: "list", Table: "task_deps", Err: err}
	}
	defer rows.Close()

	var out []domain.Dep
	for rows.Next() {
		var (
			d       domain.Dep
			kind    string
			created int64
		)
		if err := rows.Scan(&d.TaskID, &d.DepID, &kind, &created); err != nil {
			return nil, &domain.StoreError{Op: "list", Table: "task_deps", Err: err}
		}
		d.Kind = domain.ParseDepKind(kind)
		d.CreatedAt = time.Unix(created, 0)
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list", Table: "task_deps", Err: err}
	}
	return out, nil
}
