// Package storage persists tasks, pomodoro sessions, dependencies, and app
// state in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"pomoban/internal/domain"

	_ "modernc.org/sqlite"
)

const schemaVersion = "2"

// Store wraps the SQLite handle. All methods are safe for use from the
// single UI goroutine; the connection pool is capped at one.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, &domain.StoreError{Op: "open", Err: err}
		}
	}
	return open(ctx, sqliteDSN(path))
}

// OpenMemory opens an in-memory database, used by tests. A shared cache
// keeps the schema visible across connections.
func OpenMemory(ctx context.Context) (*Store, error) {
	return open(ctx, "file::memory:?mode=memory&cache=shared&_pragma=foreign_keys(1)")
}

func open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &domain.StoreError{Op: "open", Err: err}
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// sqliteDSN builds a file: DSN for modernc.org/sqlite. mode=rwc creates
// the database file if it doesn't exist; the _pragma params apply to every
// connection the pool opens.
func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") {
		return path
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	u := url.URL{
		Scheme: "file",
		Path:   path,
	}
	q := u.Query()
	q.Set("mode", "rwc")
	q.Add("_pragma", "busy_timeout(5000)")
	q.Add("_pragma", "foreign_keys(1)")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *Store) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS schema_meta (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'todo' CHECK (status IN ('todo','doing','done')),
	notes_md TEXT NOT NULL DEFAULT '',
	due_date TEXT DEFAULT NULL,
	priority TEXT NOT NULL DEFAULT 'P2',
	repeat_rule TEXT NOT NULL DEFAULT 'none',
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS sessions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	task_id TEXT REFERENCES tasks(id) ON DELETE CASCADE,
	kind TEXT NOT NULL CHECK (kind IN ('work','break')),
	start_ts INTEGER NOT NULL,
	end_ts INTEGER,
	duration_sec INTEGER
);
CREATE INDEX IF NOT EXISTS idx_sessions_task_id ON sessions(task_id);
CREATE INDEX IF NOT EXISTS idx_sessions_start_ts ON sessions(start_ts);
CREATE TABLE IF NOT EXISTS task_deps (
	task_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	dep_id TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
	kind TEXT NOT NULL DEFAULT 'blocker',
	created_at INTEGER NOT NULL,
	PRIMARY KEY (task_id, dep_id, kind)
);
CREATE TABLE IF NOT EXISTS app_state (
	key TEXT PRIMARY KEY,
	value TEXT
);`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return &domain.StoreError{Op: "migrate", Err: err}
	}
	if err := s.ensureTaskColumns(ctx); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO schema_meta (key, value) VALUES ('schema_version', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, schemaVersion)
	if err != nil {
		return &domain.StoreError{Op: "migrate", Table: "schema_meta", Err: err}
	}
	return nil
}

// ensureTaskColumns backfills columns added after the v1 schema.
func (s *Store) ensureTaskColumns(ctx context.Context) error {
	required := map[string]string{
		"priority":    "ALTER TABLE tasks ADD COLUMN priority TEXT NOT NULL DEFAULT 'P2';",
		"repeat_rule": "ALTER TABLE tasks ADD COLUMN repeat_rule TEXT NOT NULL DEFAULT 'none';",
	}
	existing := map[string]struct{}{}
	rows, err := s.db.QueryContext(ctx, `PRAGMA table_info(tasks);`)
	if err != nil {
		return &domain.StoreError{Op: "migrate", Table: "tasks", Err: err}
	}
	defer rows.Close()
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dflt, &pk); err != nil {
			return &domain.StoreError{Op: "migrate", Table: "tasks", Err: err}
		}
		existing[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return &domain.StoreError{Op: "migrate", Table: "tasks", Err: err}
	}
	for col, alter := range required {
		if _, ok := existing[col]; ok {
			continue
		}
		if _, err := s.db.ExecContext(ctx, alter); err != nil {
			return &domain.StoreError{Op: "migrate", Table: "tasks", Err: err}
		}
	}
	return nil
}

// SchemaVersion returns the stored schema version.
func (s *Store) SchemaVersion(ctx context.Context) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM schema_meta WHERE key = 'schema_version'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", &domain.StoreError{Op: "version", Table: "schema_meta", Err: domain.ErrNotFound}
	}
	if err != nil {
		return "", &domain.StoreError{Op: "version", Table: "schema_meta", Err: err}
	}
	return v, nil
}

// Counts returns the task and session row counts.
func (s *Store) Counts(ctx context.Context) (tasks, sessions int, err error) {
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM tasks`).Scan(&tasks); err != nil {
		return 0, 0, &domain.StoreError{Op: "count", Table: "tasks", Err: err}
	}
	if err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sessions`).Scan(&sessions); err != nil {
		return 0, 0, &domain.StoreError{Op: "count", Table: "sessions", Err: err}
	}
	return tasks, sessions, nil
}
