package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pomoban/internal/domain"
)

const dueLayout = "2006-01-02"

const taskColumns = `id, title, status, notes_md, due_date, priority, repeat_rule, created_at, updated_at`

// CreateTask inserts a new task.
func (s *Store) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, string(t.Status), t.Notes, dueText(t.Due),
		t.Priority.String(), string(t.Repeat), t.CreatedAt.Unix(), t.UpdatedAt.Unix())
	if err != nil {
		return &domain.StoreError{Op: "create", Table: "tasks", Err: err}
	}
	return nil
}

// GetTask loads one task by ID.
func (s *Store) GetTask(ctx context.Context, id string) (domain.Task, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Task{}, &domain.StoreError{Op: "get", Table: "tasks", Err: domain.ErrNotFound}
	}
	if err != nil {
		return domain.Task{}, &domain.StoreError{Op: "get", Table: "tasks", Err: err}
	}
	return t, nil
}

// ListTasks returns all tasks, most recently updated first.
func (s *Store) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY updated_at DESC, id ASC`)
	if err != nil {
		return nil, &domain.StoreError{Op: "list", Table: "tasks", Err: err}
	}
	defer rows.Close()

	var out []domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, &domain.StoreError{Op: "list", Table: "tasks", Err: err}
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list", Table: "tasks", Err: err}
	}
	return out, nil
}

// UpdateTask writes all mutable fields and bumps updated_at.
func (s *Store) UpdateTask(ctx context.Context, t domain.Task) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET title = ?, status = ?, notes_md = ?, due_date = ?,
		 priority = ?, repeat_rule = ?, updated_at = ? WHERE id = ?`,
		t.Title, string(t.Status), t.Notes, dueText(t.Due),
		t.Priority.String(), string(t.Repeat), time.Now().Unix(), t.ID)
	if err != nil {
		return &domain.StoreError{Op: "update", Table: "tasks", Err: err}
	}
	return requireRow(res, "update", "tasks")
}

// SetStatus moves a task between columns and bumps updated_at.
func (s *Store) SetStatus(ctx context.Context, id string, status domain.Status) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().Unix(), id)
	if err != nil {
		return &domain.StoreError{Op: "move", Table: "tasks", Err: err}
	}
	return requireRow(res, "move", "tasks")
}

// DeleteTask removes a task. Sessions and dependency edges referencing it
// go with it via ON DELETE CASCADE.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return &domain.StoreError{Op: "delete", Table: "tasks", Err: err}
	}
	return requireRow(res, "delete", "tasks")
}

func requireRow(res sql.Result, op, table string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return &domain.StoreError{Op: op, Table: table, Err: err}
	}
	if n == 0 {
		return &domain.StoreError{Op: op, Table: table, Err: domain.ErrNotFound}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (domain.Task, error) {
	var (
		t                  domain.Task
		status, prio, rule string
		due                sql.NullString
		created, updated   int64
	)
	err := row.Scan(&t.ID, &t.Title, &status, &t.Notes, &due, &prio, &rule, &created, &updated)
	if err != nil {
		return domain.Task{}, err
	}
	t.Status = domain.ParseStatus(status)
	t.Priority = domain.ParsePriority(prio)
	t.Repeat = domain.ParseRepeat(rule)
	t.CreatedAt = time.Unix(created, 0)
	t.UpdatedAt = time.Unix(updated, 0)
	if due.Valid && due.String != "" {
		if d, err := time.ParseInLocation(dueLayout, due.String, time.Local); err == nil {
			t.Due = &d
		}
	}
	return t, nil
}

func dueText(due *time.Time) any {
	if due == nil {
		return nil
	}
	return due.Format(dueLayout)
}
