package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/ui/styles"
)

// renderColumn renders a kanban column with header and task cards
func renderColumn(col Column, cursorTask int, isActive bool, rc Context, width, height int, s *styles.Styles) string {
	// Choose header style based on whether this column is active
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// Render header with title and count (e.g., "─ To Do (3) ─────")
	headerText := fmt.Sprintf("─ %s (%d) ", col.Title, len(col.Tasks))
	remainingWidth := width - len(headerText) - 2 // Account for padding
	if remainingWidth > 0 {
		headerText += strings.Repeat("─", remainingWidth)
	}
	header := headerStyle.Render(headerText)

	// Render cards
	var cardStrings []string
	cardWidth := width - 6 // Account for column and card borders and padding
	for i, task := range col.Tasks {
		isCursor := isActive && i == cursorTask
		cardStrings = append(cardStrings, renderCard(task, isCursor, rc, cardWidth, s))
	}

	// Handle empty column
	content := ""
	if len(cardStrings) > 0 {
		content = strings.Join(cardStrings, "\n")
	}

	// The header and the column border take three lines of the height
	// budget. lipgloss Height only pads short content, so overflow has to
	// be cut here.
	innerHeight := height - 3
	if innerHeight < 1 {
		innerHeight = 1
	}
	if lines := strings.Split(content, "\n"); len(lines) > innerHeight {
		content = strings.Join(lines[:innerHeight], "\n")
	}

	// Apply column style; the border adds the two cells back.
	columnStyle := s.Column.Width(width - 2).Height(innerHeight)
	columnContent := columnStyle.Render(content)

	// Join header and column
	return lipgloss.JoinVertical(lipgloss.Left, header, columnContent)
}
