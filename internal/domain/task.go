package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task is one card on the board.
type Task struct {
	ID        string
	Title     string
	Notes     string // markdown body
	Status    Status
	Priority  Priority
	Due       *time.Time
	Repeat    RepeatRule
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask creates a task in the TODO column with a fresh ID.
func NewTask(title string) Task {
	now := time.Now()
	return Task{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    StatusTodo,
		Priority:  P2,
		Repeat:    RepeatNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Overdue reports whether the task has a due date before today.
func (t Task) Overdue(now time.Time) bool {
	if t.Due == nil || t.Status == StatusDone {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return t.Due.Before(today)
}

// DueString formats the due date for display, empty when unset.
func (t Task) DueString() string {
	if t.Due == nil {
		return ""
	}
	return t.Due.Format("2006-01-02")
}

// Status is the board column a task lives in.
type Status string

const (
	StatusTodo  Status = "todo"
	StatusDoing Status = "doing"
	StatusDone  Status = "done"
)

// Statuses lists the columns in board order.
var Statuses = []Status{StatusTodo, StatusDoing, StatusDone}

// Column returns the kanban column index for this status.
func (s Status) Column() int {
	switch s {
	case StatusTodo:
		return 0
	case StatusDoing:
		return 1
	case StatusDone:
		return 2
	default:
		return 0
	}
}

// String returns the display string
func (s Status) String() string {
	return string(s)
}

// Label returns the column heading for this status.
func (s Status) Label() string {
	switch s {
	case StatusDoing:
		return "Doing"
	case StatusDone:
		return "Done"
	default:
		return "To Do"
	}
}

// ParseStatus normalizes stored text; unrecognized values land in TODO.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusDoing, StatusDone:
		return Status(s)
	default:
		return StatusTodo
	}
}

// Priority represents task priority (0 = highest)
type Priority int

const (
	P0 Priority = iota // Urgent
	P1                 // Normal
	P2                 // Low
)

// String returns priority as string
func (p Priority) String() string {
	if p < P0 || p > P2 {
		return "P2"
	}
	return []string{"P0", "P1", "P2"}[p]
}

// ParsePriority maps stored text to a Priority; unknown text gets P2.
func ParsePriority(s string) Priority {
	switch s {
	case "P0":
		return P0
	case "P1":
		return P1
	default:
		return P2
	}
}

// Next cycles P0 -> P1 -> P2 -> P0, for the edit overlays.
func (p Priority) Next() Priority {
	if p >= P2 {
		return P0
	}
	return p + 1
}

// RepeatRule schedules a successor task when a task completes.
type RepeatRule string

const (
	RepeatNone    RepeatRule = "none"
	RepeatDaily   RepeatRule = "daily"
	RepeatWeekly  RepeatRule = "weekly"
	RepeatMonthly RepeatRule = "monthly"
)

// ParseRepeat normalizes stored text; anything unrecognized is none.
func ParseRepeat(s string) RepeatRule {
	switch RepeatRule(s) {
	case RepeatDaily, RepeatWeekly, RepeatMonthly:
		return RepeatRule(s)
	default:
		return RepeatNone
	}
}

// String returns the display string
func (r RepeatRule) String() string {
	return string(r)
}

// Next cycles none -> daily -> weekly -> monthly -> none.
func (r RepeatRule) Next() RepeatRule {
	switch r {
	case RepeatNone:
		return RepeatDaily
	case RepeatDaily:
		return RepeatWeekly
	case RepeatWeekly:
		return RepeatMonthly
	default:
		return RepeatNone
	}
}
