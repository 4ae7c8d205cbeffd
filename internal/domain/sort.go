package domain

import "sort"

// SortField represents a field to sort by
type SortField string

const (
	SortByPriority SortField = "priority"
	SortByDue      SortField = "due"
	SortByUpdated  SortField = "updated"
)

// SortOrder represents sort direction
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

// Sort represents sorting state
type Sort struct {
	Field SortField
	Order SortOrder
}

// Toggle toggles the sort field or direction
// If field is different, sets new field with ascending order
// If field is same, toggles between ascending and descending
func (s *Sort) Toggle(field SortField) {
	if s.Field == field {
		// Toggle order
		if s.Order == SortAsc {
			s.Order = SortDesc
		} else {
			s.Order = SortAsc
		}
	} else {
		// New field, default to ascending
		s.Field = field
		s.Order = SortAsc
	}
}

// Apply sorts a list of tasks
func (s *Sort) Apply(tasks []Task) []Task {
	if len(tasks) == 0 {
		return tasks
	}

	// Make a copy to avoid modifying the input slice
	result := make([]Task, len(tasks))
	copy(result, tasks)

	// Sort based on field
	switch s.Field {
	case SortByPriority:
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return result[i].Priority < result[j].Priority
			}
			return result[i].Priority > result[j].Priority
		})

	case SortByDue:
		// Tasks without a due date sort to the end in either direction.
		sort.SliceStable(result, func(i, j int) bool {
			di, dj := result[i].Due, result[j].Due
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			if s.Order == SortAsc {
				return di.Before(*dj)
			}
			return di.After(*dj)
		})

	case SortByUpdated:
		sort.SliceStable(result, func(i, j int) bool {
			if s.Order == SortAsc {
				return result[i].UpdatedAt.Before(result[j].UpdatedAt)
			}
			return result[i].UpdatedAt.After(result[j].UpdatedAt)
		})
	}

	return result
}
