package stats

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomoban/internal/domain"
	"pomoban/internal/storage"
)

func testService(t *testing.T) (*Service, *storage.Store) {
	t.Helper()
	store, err := storage.OpenMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewService(store, slog.Default()), store
}

func logSession(t *testing.T, store *storage.Store, taskID string, kind domain.SessionKind, start time.Time, dur time.Duration) {
	t.Helper()
	ctx := context.Background()
	id, err := store.StartSession(ctx, taskID, kind, start)
	require.NoError(t, err)
	require.NoError(t, store.EndSession(ctx, id, start.Add(dur)))
}

func TestTodayWorkCountsSinceMidnight(t *testing.T) {
	svc, store := testService(t)
	ctx := context.Background()

	task := domain.NewTask("daily grind")
	require.NoError(t, store.CreateTask(ctx, task))

	// Fix "now" mid-day so yesterday's session is clearly before midnight.
	y, m, d := time.Now().Local().Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, time.Local)

	logSession(t, store, task.ID, domain.SessionWork, noon.Add(-26*time.Hour), 25*time.Minute)
	logSession(t, store, task.ID, domain.SessionWork, noon.Add(-2*time.Hour), 25*time.Minute)
	logSession(t, store, task.ID, domain.SessionWork, noon.Add(-1*time.Hour), 10*time.Minute)
	logSession(t, store, task.ID, domain.SessionBreak, noon.Add(-30*time.Minute), 5*time.Minute)

	total, err := svc.TodayWork(ctx, noon)
	require.NoError(t, err)
	assert.Equal(t, 35*60, total)
}

func TestTaskWorkIsPerTask(t *testing.T) {
	svc, store := testService(t)
	ctx := context.Background()

	a := domain.NewTask("a")
	b := domain.NewTask("b")
	require.NoError(t, store.CreateTask(ctx, a))
	require.NoError(t, store.CreateTask(ctx, b))

	base := time.Now().Add(-3 * time.Hour)
	logSession(t, store, a.ID, domain.SessionWork, base, 25*time.Minute)
	logSession(t, store, a.ID, domain.SessionWork, base.Add(time.Hour), 15*time.Minute)
	logSession(t, store, b.ID, domain.SessionWork, base.Add(2*time.Hour), 5*time.Minute)

	forA, err := svc.TaskWork(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 40*60, forA)

	forB, err := svc.TaskWork(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 5*60, forB)

	none, err := svc.TaskWork(ctx, "untouched")
	require.NoError(t, err)
	assert.Zero(t, none)
}

func TestDBInfo(t *testing.T) {
	svc, store := testService(t)
	ctx := context.Background()

	task := domain.NewTask("counted")
	require.NoError(t, store.CreateTask(ctx, task))
	logSession(t, store, task.ID, domain.SessionWork, time.Now().Add(-time.Hour), 25*time.Minute)

	info, err := svc.DBInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", info.SchemaVersion)
	assert.Equal(t, 1, info.Tasks)
	assert.Equal(t, 1, info.Sessions)
}

func TestFormatHMS(t *testing.T) {
	tests := []struct {
		name string
		sec  int
		want string
	}{
		{"zero", 0, "0m 00s"},
		{"seconds only", 59, "0m 59s"},
		{"minutes and seconds", 63, "1m 03s"},
		{"just under an hour", 3599, "59m 59s"},
		{"exact hour", 3600, "1h 00m"},
		{"hour and minutes", 3900, "1h 05m"},
		{"multiple hours", 7384, "2h 03m"},
		{"negative clamps", -5, "0m 00s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatHMS(tt.sec))
		})
	}
}
