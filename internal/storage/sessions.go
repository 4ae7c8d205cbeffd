package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pomoban/internal/domain"
)

// StartSession records the start of a work or break interval and returns
// the new session ID.
func (s *Store) StartSession(ctx context.Context, taskID string, kind domain.SessionKind, start time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (task_id, kind, start_ts) VALUES (?, ?, ?)`,
		nullText(taskID), string(kind), start.Unix())
	if err != nil {
		return 0, &domain.StoreError{Op: "start", Table: "sessions", Err: err}
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, &domain.StoreError{Op: "start", Table: "sessions", Err: err}
	}
	return id, nil
}

// EndSession closes a session and fills in its elapsed duration.
func (s *Store) EndSession(ctx context.Context, id int64, end time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET end_ts = ?, duration_sec = ? - start_ts
		 WHERE id = ? AND end_ts IS NULL`,
		end.Unix(), end.Unix(), id)
	if err != nil {
		return &domain.StoreError{Op: "end", Table: "sessions", Err: err}
	}
	return requireRow(res, "end", "sessions")
}

// CloseDanglingSessions closes any session left open by a crash or kill,
// attributing time up to end. Returns the number of sessions closed.
func (s *Store) CloseDanglingSessions(ctx context.Context, end time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET end_ts = ?, duration_sec = ? - start_ts
		 WHERE end_ts IS NULL`,
		end.Unix(), end.Unix())
	if err != nil {
		return 0, &domain.StoreError{Op: "recover", Table: "sessions", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &domain.StoreError{Op: "recover", Table: "sessions", Err: err}
	}
	return int(n), nil
}

// ListSessions returns a task's sessions, most recent first.
func (s *Store) ListSessions(ctx context.Context, taskID string) ([]domain.PomodoroSession, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, task_id, kind, start_ts, end_ts, duration_sec
		 FROM sessions WHERE task_id = ? ORDER BY start_ts DESC, id DESC`, taskID)
	if err != nil {
		return nil, &domain.StoreError{Op: "list", Table: "sessions", Err: err}
	}
	defer rows.Close()

	var out []domain.PomodoroSession
	for rows.Next() {
		var (
			sess     domain.PomodoroSession
			taskID   sql.NullString
			kind     string
			start    int64
			end, dur sql.NullInt64
		)
		if err := rows.Scan(&sess.ID, &taskID, &kind, &start, &end, &dur); err != nil {
			return nil, &domain.StoreError{Op: "list", Table: "sessions", Err: err}
		}
		sess.TaskID = taskID.String
		sess.Kind = domain.SessionKind(kind)
		sess.StartedAt = time.Unix(start, 0)
		if end.Valid {
			t := time.Unix(end.Int64, 0)
			sess.EndedAt = &t
		}
		sess.DurationSec = int(dur.Int64)
		out = append(out, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.StoreError{Op: "list", Table: "sessions", Err: err}
	}
	return out, nil
}

// WorkSecondsSince sums closed work-session durations starting at or after
// since, across all tasks.
func (s *Store) WorkSecondsSince(ctx context.Context, since time.Time) (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT SUM(duration_sec) FROM sessions
		 WHERE kind = 'work' AND duration_sec IS NOT NULL AND start_ts >= ?`,
		since.Unix()).Scan(&total)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, &domain.StoreError{Op: "sum", Table: "sessions", Err: err}
	}
	return int(total.Int64), nil
}

// TaskWorkSeconds sums closed work-session durations logged against one task.
func (s *Store) TaskWorkSeconds(ctx context.Context, taskID string) (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT SUM(duration_sec) FROM sessions
		 WHERE kind = 'work' AND duration_sec IS NOT NULL AND task_id = ?`,
		taskID).Scan(&total)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, &domain.StoreError{Op: "sum", Table: "sessions", Err: err}
	}
	return int(total.Int64), nil
}

func nullText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
