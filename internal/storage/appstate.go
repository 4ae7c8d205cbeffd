package storage

import (
	"context"
	"database/sql"
	"errors"

	"pomoban/internal/domain"
)

// StateActiveTask is the app_state key holding the focused task ID.
const StateActiveTask = "active_task_id"

// GetState reads one app_state value. Missing keys return ErrNotFound.
func (s *Store) GetState(ctx context.Context, key string) (string, error) {
	var v sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &domain.StoreError{Op: "get", Table: "app_state", Err: domain.ErrNotFound}
	}
	if err != nil {
		return "", &domain.StoreError{Op: "get", Table: "app_state", Err: err}
	}
	return v.String, nil
}

// SetState upserts one app_state value.
func (s *Store) SetState(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return &domain.StoreError{Op: "set", Table: "app_state", Err: err}
	}
	return nil
}

// ClearState deletes one app_state key. Clearing a missing key is a no-op.
func (s *Store) ClearState(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key)
	if err != nil {
		return &domain.StoreError{Op: "clear", Table: "app_state", Err: err}
	}
	return nil
}
