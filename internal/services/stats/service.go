// Package stats aggregates logged work time for the footer and the task
// detail view.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"pomoban/internal/storage"
)

// Info describes the backing database.
type Info struct {
	SchemaVersion string
	Tasks         int
	Sessions      int
}

// Service answers work-time queries from logged sessions. Only closed work
// sessions count; breaks and the interval currently underway do not.
type Service struct {
	store  *storage.Store
	logger *slog.Logger
}

// NewService creates a stats service.
func NewService(store *storage.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// TodayWork returns the work seconds logged since local midnight.
func (s *Service) TodayWork(ctx context.Context, now time.Time) (int, error) {
	y, m, d := now.Local().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Local().Location())
	return s.store.WorkSecondsSince(ctx, midnight)
}

// TaskWork returns the total work seconds ever logged against one task.
func (s *Service) TaskWork(ctx context.Context, taskID string) (int, error) {
	return s.store.TaskWorkSeconds(ctx, taskID)
}

// DBInfo reports the schema version and row counts.
func (s *Service) DBInfo(ctx context.Context) (Info, error) {
	version, err := s.store.SchemaVersion(ctx)
	if err != nil {
		return Info{}, err
	}
	tasks, sessions, err := s.store.Counts(ctx)
	if err != nil {
		return Info{}, err
	}
	s.logger.Debug("db info", "schema", version, "tasks", tasks, "sessions", sessions)
	return Info{SchemaVersion: version, Tasks: tasks, Sessions: sessions}, nil
}

// FormatHMS renders a duration for the stats footer: "1h 05m" once an hour
// is on the clock, "5m 03s" under that.
func FormatHMS(sec int) string {
	if sec < 0 {
		sec = 0
	}
	h := sec / 3600
	m := (sec % 3600) / 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm %02ds", m, sec%60)
}
