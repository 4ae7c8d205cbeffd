package domain

import (
	"time"

	"github.com/google/uuid"
)

// AddMonths advances t by n months, clamping the day-of-month to the last
// valid day of the target month (Jan 31 + 1 month is Feb 28, or Feb 29 in
// leap years).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	// Day 1 of the target month; time.Date normalizes month overflow.
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	if last := lastDay(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// lastDay returns the number of days in the given month.
func lastDay(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// NextDue computes the due date of the successor task for a repeat rule.
// The second return is false for RepeatNone.
func NextDue(due time.Time, rule RepeatRule) (time.Time, bool) {
	switch rule {
	case RepeatDaily:
		return due.AddDate(0, 0, 1), true
	case RepeatWeekly:
		return due.AddDate(0, 0, 7), true
	case RepeatMonthly:
		return AddMonths(due, 1), true
	default:
		return time.Time{}, false
	}
}

// Successor builds the follow-up task spawned when a repeating task is
// completed: fresh ID, TODO column, same title/notes/priority/rule, due
// date advanced per the rule. Returns false when the rule is none or the
// task has no due date; completing such a task spawns nothing.
func Successor(t Task, now time.Time) (Task, bool) {
	if t.Due == nil {
		return Task{}, false
	}
	next, ok := NextDue(*t.Due, t.Repeat)
	if !ok {
		return Task{}, false
	}
	return Task{
		ID:        uuid.New().String(),
		Title:     t.Title,
		Notes:     t.Notes,
		Status:    StatusTodo,
		Priority:  t.Priority,
		Due:       &next,
		Repeat:    t.Repeat,
		CreatedAt: now,
		UpdatedAt: now,
	}, true
}
