package board

import (
	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/ui/styles"
)

// Render renders the kanban board with its three columns
func Render(columns []Column, cursor Cursor, rc Context, s *styles.Styles, width, height int) string {
	if len(columns) == 0 {
		return ""
	}

	// Calculate column width - evenly distributed
	columnWidth := width / len(columns)

	// Render each column
	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := 0
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(col, cursorTask, isActive, rc, columnWidth, height, s)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(columnWidth).Height(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	// Join columns horizontally
	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
