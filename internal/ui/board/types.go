package board

import (
	"time"

	"pomoban/internal/domain"
)

// Column represents a kanban column with tasks
type Column struct {
	Status domain.Status
	Title  string
	Tasks  []domain.Task
}

// Cursor represents the current cursor position
type Cursor struct {
	Column int // Column index (0-2)
	Task   int // Task index within column
}

// Context carries the per-render annotations cards draw from.
type Context struct {
	ActiveTaskID string          // task the pomodoro is focused on
	Blocked      map[string]bool // tasks with unresolved dependencies
	Now          time.Time       // for overdue checks
}

// BuildColumns groups tasks into the three board columns, preserving the
// order they arrive in.
func BuildColumns(tasks []domain.Task) []Column {
	cols := make([]Column, len(domain.Statuses))
	for i, status := range domain.Statuses {
		cols[i] = Column{Status: status, Title: status.Label()}
	}
	for _, task := range tasks {
		i := task.Status.Column()
		cols[i].Tasks = append(cols[i].Tasks, task)
	}
	return cols
}
