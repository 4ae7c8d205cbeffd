package list

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"pomoban/internal/domain"
)

func TestNewView(t *testing.T) {
	tasks := []domain.Task{
		{
			ID:        "t-1",
			Title:     "Test task",
			Status:    domain.StatusTodo,
			Priority:  domain.P0,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}

	lv := NewView(tasks, 80, 20)

	if lv == nil {
		t.Fatal("Expected non-nil View")
	}

	if len(lv.tasks) != 1 {
		t.Errorf("Expected 1 task, got %d", len(lv.tasks))
	}

	if lv.cursor != 0 {
		t.Errorf("Expected cursor at 0, got %d", lv.cursor)
	}

	if lv.chip != ChipAll {
		t.Errorf("Expected chip %q, got %q", ChipAll, lv.chip)
	}
}

func TestSetCursor(t *testing.T) {
	tasks := createTestTasks(5)
	lv := NewView(tasks, 80, 20)

	tests := []struct {
		name     string
		index    int
		expected int
	}{
		{"Normal position", 2, 2},
		{"Negative position", -1, 0},
		{"Beyond end", 10, 4},
		{"At end", 4, 4},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lv.SetCursor(tt.index)
			if lv.cursor != tt.expected {
				t.Errorf("Expected cursor at %d, got %d", tt.expected, lv.cursor)
			}
		})
	}
}

func TestSetTasksClampsCursor(t *testing.T) {
	lv := NewView(createTestTasks(5), 80, 20)
	lv.SetCursor(4)

	lv.SetTasks(createTestTasks(2))
	if lv.cursor != 1 {
		t.Errorf("Expected cursor clamped to 1, got %d", lv.cursor)
	}
}

func TestRenderEmpty(t *testing.T) {
	lv := NewView([]domain.Task{}, 80, 20)
	output := lv.Render()

	if !strings.Contains(output, "No tasks") {
		t.Error("Expected 'No tasks' message for empty list")
	}

	// Chips still render so the filter state stays visible
	if !strings.Contains(output, "All") {
		t.Error("Expected chip row in empty state")
	}
}

func TestRenderWithTasks(t *testing.T) {
	tasks := createTestTasks(3)
	lv := NewView(tasks, 80, 20)
	output := lv.Render()

	if !strings.Contains(output, "Title") {
		t.Error("Expected header to contain 'Title'")
	}

	if !strings.Contains(output, "Status") {
		t.Error("Expected header to contain 'Status'")
	}

	if !strings.Contains(output, "Due") {
		t.Error("Expected header to contain 'Due'")
	}

	if !strings.Contains(output, "─") {
		t.Error("Expected separator line")
	}

	for _, task := range tasks {
		if !strings.Contains(output, task.Title) {
			t.Errorf("Expected output to contain task title %s", task.Title)
		}
	}
}

func TestRenderChips(t *testing.T) {
	lv := NewView(createTestTasks(1), 80, 20)
	output := lv.Render()

	for _, label := range []string{"All", "To Do", "Doing", "Done"} {
		if !strings.Contains(output, label) {
			t.Errorf("Expected chip %q in output", label)
		}
	}
}

func TestRenderCursor(t *testing.T) {
	tasks := createTestTasks(3)
	lv := NewView(tasks, 80, 20)

	lv.SetCursor(1)
	output := lv.Render()

	if !strings.Contains(output, "▶") {
		t.Error("Expected cursor indicator '▶' in output")
	}

	lines := strings.Split(output, "\n")
	found := false
	for _, line := range lines {
		if strings.Contains(line, "▶") && strings.Contains(line, "Task 2") {
			found = true
			break
		}
	}

	if !found {
		t.Error("Expected cursor indicator on line with Task 2")
	}
}

func TestRenderActiveTimerMarker(t *testing.T) {
	tasks := createTestTasks(3)
	lv := NewView(tasks, 80, 20)

	lv.SetActiveTask("t-3")
	lv.SetCursor(0)
	output := lv.Render()

	lines := strings.Split(output, "\n")
	found := false
	for _, line := range lines {
		if strings.Contains(line, "●") && strings.Contains(line, "Task 3") {
			found = true
			break
		}
	}

	if !found {
		t.Error("Expected active-timer indicator on line with Task 3")
	}
}

func TestRenderCursorOnActiveTask(t *testing.T) {
	tasks := createTestTasks(2)
	lv := NewView(tasks, 80, 20)

	lv.SetActiveTask("t-1")
	lv.SetCursor(0)
	output := lv.Render()

	if !strings.Contains(output, "●▶") {
		t.Error("Expected combined indicator '●▶' when cursor sits on the active task")
	}
}

func TestRenderOverdue(t *testing.T) {
	past := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	task := domain.Task{
		ID:       "t-1",
		Title:    "Late",
		Status:   domain.StatusTodo,
		Priority: domain.P2,
		Due:      &past,
	}

	lv := NewView([]domain.Task{task}, 80, 20)
	lv.SetNow(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	output := lv.Render()

	if !strings.Contains(output, "10 Jun!") {
		t.Error("Expected overdue marker '10 Jun!' in output")
	}
}

func TestRenderFlags(t *testing.T) {
	tasks := []domain.Task{
		{ID: "t-1", Title: "Repeats", Status: domain.StatusTodo, Repeat: domain.RepeatWeekly},
		{ID: "t-2", Title: "Stuck", Status: domain.StatusTodo},
	}

	lv := NewView(tasks, 80, 20)
	lv.SetBlocked(map[string]bool{"t-2": true})
	output := lv.Render()

	if !strings.Contains(output, "↻") {
		t.Error("Expected repeat flag in output")
	}
	if !strings.Contains(output, "⊘") {
		t.Error("Expected blocked flag in output")
	}
}

func TestRenderFooter(t *testing.T) {
	lv := NewView(createTestTasks(1), 80, 20)
	lv.SetFooter("Today (work): 1h 05m • Selected: 12m 30s — Task 1")
	output := lv.Render()

	if !strings.Contains(output, "Today (work): 1h 05m") {
		t.Error("Expected stats footer in output")
	}
}

func TestRenderStatusValues(t *testing.T) {
	tests := []struct {
		status   domain.Status
		expected string
	}{
		{domain.StatusTodo, "todo"},
		{domain.StatusDoing, "doing"},
		{domain.StatusDone, "done"},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			task := domain.Task{
				ID:       "t-test",
				Title:    "Test",
				Status:   tt.status,
				Priority: domain.P2,
			}

			lv := NewView([]domain.Task{task}, 80, 20)
			output := lv.Render()

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain status %q", tt.expected)
			}
		})
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	tasks := createTestTasks(50)
	lv := NewView(tasks, 80, 12)

	lv.SetCursor(40)
	if lv.scrollOffset == 0 {
		t.Error("Expected scroll offset to follow the cursor")
	}

	output := lv.Render()
	if !strings.Contains(output, "Task 41") {
		t.Error("Expected the cursor row to be visible after scrolling")
	}
	if !strings.Contains(output, "more tasks") {
		t.Error("Expected scroll indicator when rows remain below")
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"No truncation needed", "Short", 10, "Short"},
		{"Exact fit", "12345", 5, "12345"},
		{"Truncate with ellipsis", "This is a very long title", 15, "This is a ve..."},
		{"Very short width", "Long text", 5, "Lo..."},
		{"Width too small for ellipsis", "Text", 2, ".."},
		{"Width 1", "Text", 1, "."},
		{"Empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateString(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}

			if len([]rune(result)) > tt.width {
				t.Errorf("Result %q exceeds width %d", result, tt.width)
			}
		})
	}
}

// Helper functions

func createTestTasks(count int) []domain.Task {
	tasks := make([]domain.Task, count)
	now := time.Now()

	for i := 0; i < count; i++ {
		tasks[i] = domain.Task{
			ID:        fmt.Sprintf("t-%d", i+1),
			Title:     fmt.Sprintf("Task %d", i+1),
			Status:    domain.StatusTodo,
			Priority:  domain.Priority(i % 3),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	return tasks
}
