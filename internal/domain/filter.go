package domain

import (
	"strings"
	"time"
)

// Filter represents task filtering state
type Filter struct {
	Status      map[Status]bool
	Priority    map[Priority]bool
	Repeat      map[RepeatRule]bool
	OverdueOnly bool
	SearchQuery string
}

// NewFilter creates a new empty filter
func NewFilter() *Filter {
	return &Filter{
		Status:   make(map[Status]bool),
		Priority: make(map[Priority]bool),
		Repeat:   make(map[RepeatRule]bool),
	}
}

// IsActive returns true if any filter is active
func (f *Filter) IsActive() bool {
	return len(f.Status) > 0 ||
		len(f.Priority) > 0 ||
		len(f.Repeat) > 0 ||
		f.OverdueOnly ||
		f.SearchQuery != ""
}

// Apply filters a list of tasks
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}

// Matches returns true if the task passes all active filters
// Uses AND logic between filter types, OR logic within filter types
func (f *Filter) Matches(t Task) bool {
	// Status filter (OR within)
	if len(f.Status) > 0 {
		if !f.Status[t.Status] {
			return false
		}
	}

	// Priority filter (OR within)
	if len(f.Priority) > 0 {
		if !f.Priority[t.Priority] {
			return false
		}
	}

	// Repeat rule filter (OR within)
	if len(f.Repeat) > 0 {
		if !f.Repeat[t.Repeat] {
			return false
		}
	}

	// Overdue filter
	if f.OverdueOnly {
		if !t.Overdue(time.Now()) {
			return false
		}
	}

	// Search query (case-insensitive, matches title or notes)
	if f.SearchQuery != "" {
		query := strings.ToLower(f.SearchQuery)
		title := strings.ToLower(t.Title)
		notes := strings.ToLower(t.Notes)

		if !strings.Contains(title, query) && !strings.Contains(notes, query) {
			return false
		}
	}

	return true
}

// Clear resets all filters
func (f *Filter) Clear() {
	f.Status = make(map[Status]bool)
	f.Priority = make(map[Priority]bool)
	f.Repeat = make(map[RepeatRule]bool)
	f.OverdueOnly = false
	f.SearchQuery = ""
}

// ToggleStatus toggles a status filter
func (f *Filter) ToggleStatus(s Status) {
	if f.Status[s] {
		delete(f.Status, s)
	} else {
		f.Status[s] = true
	}
}

// TogglePriority toggles a priority filter
func (f *Filter) TogglePriority(p Priority) {
	if f.Priority[p] {
		delete(f.Priority, p)
	} else {
		f.Priority[p] = true
	}
}

// ToggleRepeat toggles a repeat rule filter
func (f *Filter) ToggleRepeat(r RepeatRule) {
	if f.Repeat[r] {
		delete(f.Repeat, r)
	} else {
		f.Repeat[r] = true
	}
}

// ToggleOverdue toggles the overdue-only filter
func (f *Filter) ToggleOverdue() {
	f.OverdueOnly = !f.OverdueOnly
}
