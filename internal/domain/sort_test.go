package domain

import (
	"testing"
	"time"
)

func TestSort_Toggle(t *testing.T) {
	tests := []struct {
		name      string
		initial   Sort
		toggleTo  SortField
		wantField SortField
		wantOrder SortOrder
	}{
		{
			name:      "toggle to new field sets asc",
			initial:   Sort{Field: SortByPriority, Order: SortDesc},
			toggleTo:  SortByDue,
			wantField: SortByDue,
			wantOrder: SortAsc,
		},
		{
			name:      "toggle same field asc to desc",
			initial:   Sort{Field: SortByPriority, Order: SortAsc},
			toggleTo:  SortByPriority,
			wantField: SortByPriority,
			wantOrder: SortDesc,
		},
		{
			name:      "toggle same field desc to asc",
			initial:   Sort{Field: SortByPriority, Order: SortDesc},
			toggleTo:  SortByPriority,
			wantField: SortByPriority,
			wantOrder: SortAsc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.initial
			s.Toggle(tt.toggleTo)

			if s.Field != tt.wantField {
				t.Errorf("Toggle() field = %v, want %v", s.Field, tt.wantField)
			}
			if s.Order != tt.wantOrder {
				t.Errorf("Toggle() order = %v, want %v", s.Order, tt.wantOrder)
			}
		})
	}
}

func TestSort_Apply_Priority(t *testing.T) {
	tasks := []Task{
		{ID: "t-1", Priority: P2},
		{ID: "t-2", Priority: P0},
		{ID: "t-3", Priority: P1},
		{ID: "t-4", Priority: P0},
	}

	t.Run("ascending", func(t *testing.T) {
		s := Sort{Field: SortByPriority, Order: SortAsc}
		result := s.Apply(tasks)

		// P0 < P1 < P2 (lower number = higher priority, should come first in asc)
		want := []string{"t-2", "t-4", "t-3", "t-1"}
		for i, task := range result {
			if task.ID != want[i] {
				t.Errorf("Apply()[%d] = %s, want %s", i, task.ID, want[i])
			}
		}
	})

	t.Run("descending", func(t *testing.T) {
		s := Sort{Field: SortByPriority, Order: SortDesc}
		result := s.Apply(tasks)

		want := []string{"t-1", "t-3", "t-2", "t-4"}
		for i, task := range result {
			if task.ID != want[i] {
				t.Errorf("Apply()[%d] = %s, want %s", i, task.ID, want[i])
			}
		}
	})
}

func TestSort_Apply_Due(t *testing.T) {
	d1 := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	d3 := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)

	tasks := []Task{
		{ID: "t-1", Due: &d2},
		{ID: "t-2"},
		{ID: "t-3", Due: &d3},
		{ID: "t-4", Due: &d1},
	}

	t.Run("ascending (soonest first, undated last)", func(t *testing.T) {
		s := Sort{Field: SortByDue, Order: SortAsc}
		result := s.Apply(tasks)

		want := []string{"t-4", "t-1", "t-3", "t-2"}
		for i, task := range result {
			if task.ID != want[i] {
				t.Errorf("Apply()[%d] = %s, want %s", i, task.ID, want[i])
			}
		}
	})

	t.Run("descending (latest first, undated last)", func(t *testing.T) {
		s := Sort{Field: SortByDue, Order: SortDesc}
		result := s.Apply(tasks)

		want := []string{"t-3", "t-1", "t-4", "t-2"}
		for i, task := range result {
			if task.ID != want[i] {
				t.Errorf("Apply()[%d] = %s, want %s", i, task.ID, want[i])
			}
		}
	})
}

func TestSort_Apply_Updated(t *testing.T) {
	now := time.Now()
	tasks := []Task{
		{ID: "t-1", UpdatedAt: now.Add(-2 * time.Hour)},
		{ID: "t-2", UpdatedAt: now.Add(-5 * time.Hour)},
		{ID: "t-3", UpdatedAt: now.Add(-1 * time.Hour)},
		{ID: "t-4", UpdatedAt: now.Add(-10 * time.Hour)},
	}

	t.Run("ascending (oldest first)", func(t *testing.T) {
		s := Sort{Field: SortByUpdated, Order: SortAsc}
		result := s.Apply(tasks)

		want := []string{"t-4", "t-2", "t-1", "t-3"}
		for i, task := range result {
			if task.ID != want[i] {
				t.Errorf("Apply()[%d] = %s, want %s", i, task.ID, want[i])
			}
		}
	})

	t.Run("descending (newest first)", func(t *testing.T) {
		s := Sort{Field: SortByUpdated, Order: SortDesc}
		result := s.Apply(tasks)

		want := []string{"t-3", "t-1", "t-2", "t-4"}
		for i, task := range result {
			if task.ID != want[i] {
				t.Errorf("Apply()[%d] = %s, want %s", i, task.ID, want[i])
			}
		}
	})
}

func TestSort_Apply_EmptyTasks(t *testing.T) {
	s := Sort{Field: SortByPriority, Order: SortAsc}
	result := s.Apply([]Task{})

	if len(result) != 0 {
		t.Errorf("Apply(empty) should return empty slice, got %d tasks", len(result))
	}
}

func TestSort_Apply_StableSort(t *testing.T) {
	// Tasks with same priority should maintain relative order
	tasks := []Task{
		{ID: "t-1", Priority: P1, UpdatedAt: time.Now().Add(-1 * time.Hour)},
		{ID: "t-2", Priority: P1, UpdatedAt: time.Now().Add(-2 * time.Hour)},
		{ID: "t-3", Priority: P1, UpdatedAt: time.Now().Add(-3 * time.Hour)},
	}

	s := Sort{Field: SortByPriority, Order: SortAsc}
	result := s.Apply(tasks)

	// Should maintain original order when priorities are equal
	want := []string{"t-1", "t-2", "t-3"}
	for i, task := range result {
		if task.ID != want[i] {
			t.Errorf("Apply()[%d] = %s, want %s (stable sort failed)", i, task.ID, want[i])
		}
	}
}
