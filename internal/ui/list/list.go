// Package list renders the flat list view, the alternative to the board.
package list

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/domain"
)

// ChipAll is the filter chip that shows every status.
const ChipAll = "all"

// View is a scrollable task table with filter chips and a stats footer.
type View struct {
	tasks  []domain.Task
	cursor int
	styles *Styles
	width  int
	height int

	scrollOffset int

	activeTaskID string
	blocked      map[string]bool
	now          time.Time

	chip   string
	footer string
}

// NewView creates a list view with the given tasks and dimensions.
func NewView(tasks []domain.Task, width, height int) *View {
	return &View{
		tasks:  tasks,
		cursor: 0,
		styles: NewStyles(),
		width:  width,
		height: height,
		now:    time.Now(),
		chip:   ChipAll,
	}
}

// SetTasks updates the task list
func (lv *View) SetTasks(tasks []domain.Task) {
	lv.tasks = tasks
	if lv.cursor >= len(lv.tasks) {
		lv.cursor = max(0, len(lv.tasks)-1)
	}
}

// SetCursor sets the cursor position
func (lv *View) SetCursor(index int) {
	if index < 0 {
		lv.cursor = 0
	} else if index >= len(lv.tasks) {
		lv.cursor = max(0, len(lv.tasks)-1)
	} else {
		lv.cursor = index
	}
	lv.ensureCursorVisible()
}

// GetCursor returns the current cursor position
func (lv *View) GetCursor() int {
	return lv.cursor
}

// MoveUp moves cursor up by n positions
func (lv *View) MoveUp(n int) {
	lv.SetCursor(lv.cursor - n)
}

// MoveDown moves cursor down by n positions
func (lv *View) MoveDown(n int) {
	lv.SetCursor(lv.cursor + n)
}

// GotoTop moves cursor to the first task
func (lv *View) GotoTop() {
	lv.SetCursor(0)
}

// GotoBottom moves cursor to the last task
func (lv *View) GotoBottom() {
	lv.SetCursor(len(lv.tasks) - 1)
}

// GetCurrentTask returns the task at the cursor position
func (lv *View) GetCurrentTask() *domain.Task {
	if lv.cursor >= 0 && lv.cursor < len(lv.tasks) {
		return &lv.tasks[lv.cursor]
	}
	return nil
}

// SetDimensions updates the view dimensions
func (lv *View) SetDimensions(width, height int) {
	lv.width = width
	lv.height = height
	lv.ensureCursorVisible()
}

// SetActiveTask marks the task the timer is running against.
func (lv *View) SetActiveTask(id string) {
	lv.activeTaskID = id
}

// SetBlocked marks tasks with unresolved dependencies.
func (lv *View) SetBlocked(blocked map[string]bool) {
	lv.blocked = blocked
}

// SetNow fixes the reference time for overdue highlighting.
func (lv *View) SetNow(now time.Time) {
	lv.now = now
}

// SetChip sets the active status filter chip ("all" or a status value).
func (lv *View) SetChip(chip string) {
	lv.chip = chip
}

// SetFooter sets the stats footer line.
func (lv *View) SetFooter(footer string) {
	lv.footer = footer
}

// Render renders the full list view
func (lv *View) Render() string {
	var b strings.Builder

	b.WriteString(lv.renderChips())
	b.WriteString("\n")

	if len(lv.tasks) == 0 {
		b.WriteString(lv.renderEmptyState())
	} else {
		b.WriteString(lv.renderHeader())
		b.WriteString("\n")
		b.WriteString(lv.renderSeparator())
		b.WriteString("\n")

		visibleRows := lv.calculateVisibleRows()
		startIdx := lv.scrollOffset
		endIdx := min(startIdx+visibleRows, len(lv.tasks))

		for i := startIdx; i < endIdx; i++ {
			b.WriteString(lv.renderRow(i, lv.tasks[i]))
			if i < endIdx-1 {
				b.WriteString("\n")
			}
		}

		if endIdx < len(lv.tasks) {
			b.WriteString("\n")
			b.WriteString(lv.styles.Separator.Render(
				fmt.Sprintf(" ↓ %d more tasks ↓ ", len(lv.tasks)-endIdx),
			))
		}
	}

	if lv.footer != "" {
		b.WriteString("\n")
		b.WriteString(lv.renderSeparator())
		b.WriteString("\n")
		b.WriteString(lv.styles.Footer.Render(lv.footer))
	}

	return b.String()
}

// renderChips renders the status filter chip row
func (lv *View) renderChips() string {
	chips := []struct {
		key   string
		label string
	}{
		{ChipAll, "All"},
		{string(domain.StatusTodo), "To Do"},
		{string(domain.StatusDoing), "Doing"},
		{string(domain.StatusDone), "Done"},
	}

	rendered := make([]string, 0, len(chips))
	for _, c := range chips {
		style := lv.styles.Chip
		if c.key == lv.chip {
			style = lv.styles.ChipActive
		}
		rendered = append(rendered, style.Render(" "+c.label+" "))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// renderEmptyState renders the empty state
func (lv *View) renderEmptyState() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lv.styles.Row.GetForeground()).
		Italic(true).
		Align(lipgloss.Center).
		Width(lv.width).
		Height(lv.height / 2)

	return emptyStyle.Render("No tasks to display\n\nPress 'c' to create a task or '/' to search")
}

// renderHeader renders the table header
func (lv *View) renderHeader() string {
	widths := lv.calculateColumnWidths()

	cells := []string{
		lv.styles.HeaderCell.Width(widths.number).Render("#"),
		lv.styles.HeaderCell.Width(widths.title).Render("Title"),
		lv.styles.HeaderCell.Width(widths.status).Render("Status"),
		lv.styles.HeaderCell.Width(widths.priority).Render("Pri"),
		lv.styles.HeaderCell.Width(widths.due).Render("Due"),
		lv.styles.HeaderCell.Width(widths.flags).Render("Flags"),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderSeparator renders the separator line
func (lv *View) renderSeparator() string {
	return lv.styles.Separator.Render(strings.Repeat("─", max(0, lv.width)))
}

// renderRow renders a single task row
func (lv *View) renderRow(index int, task domain.Task) string {
	isCursor := index == lv.cursor
	isActive := task.ID != "" && task.ID == lv.activeTaskID

	rowStyle := lv.styles.Row
	if isCursor {
		rowStyle = lv.styles.RowActive
	}

	widths := lv.calculateColumnWidths()

	cells := []string{
		lv.renderNumberCell(index, isCursor, isActive, rowStyle, widths.number),
		lv.renderTitleCell(task.Title, rowStyle, widths.title),
		lv.renderStatusCell(task.Status, widths.status),
		lv.renderPriorityCell(task.Priority, widths.priority),
		lv.renderDueCell(task, widths.due),
		lv.renderFlagsCell(task, widths.flags),
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderNumberCell renders the row number with cursor/active-timer indicators
func (lv *View) renderNumberCell(index int, isCursor, isActive bool, rowStyle lipgloss.Style, width int) string {
	var indicator string
	if isCursor && isActive {
		indicator = lv.styles.Active.Render("●▶")
	} else if isCursor {
		indicator = lv.styles.Cursor.Render("▶ ")
	} else if isActive {
		indicator = lv.styles.Active.Render("● ")
	} else {
		indicator = "  "
	}

	number := fmt.Sprintf("%2d", index+1)

	return rowStyle.Width(width).Render(indicator + number)
}

// renderTitleCell renders the task title with truncation
func (lv *View) renderTitleCell(title string, rowStyle lipgloss.Style, width int) string {
	return rowStyle.Width(width).Render(truncateString(title, width))
}

// renderStatusCell renders the status with color
func (lv *View) renderStatusCell(status domain.Status, width int) string {
	var style lipgloss.Style

	switch status {
	case domain.StatusTodo:
		style = lv.styles.StatusTodo
	case domain.StatusDoing:
		style = lv.styles.StatusDoing
	case domain.StatusDone:
		style = lv.styles.StatusDone
	default:
		style = lv.styles.Row
	}

	return style.Width(width).Align(lipgloss.Center).Render(string(status))
}

// renderPriorityCell renders the priority with color
func (lv *View) renderPriorityCell(priority domain.Priority, width int) string {
	var style lipgloss.Style

	switch priority {
	case domain.P0:
		style = lv.styles.PriorityP0
	case domain.P1:
		style = lv.styles.PriorityP1
	case domain.P2:
		style = lv.styles.PriorityP2
	default:
		style = lv.styles.Row
	}

	return style.Width(width).Align(lipgloss.Center).Render(priority.String())
}

// renderDueCell renders the due date, highlighted when overdue
func (lv *View) renderDueCell(task domain.Task, width int) string {
	if task.Due == nil {
		return lv.styles.Row.Width(width).Render("")
	}

	text := task.Due.Format("02 Jan")
	style := lv.styles.Due
	if task.Overdue(lv.now) {
		text += "!"
		style = lv.styles.Overdue
	}

	return style.Width(width).Align(lipgloss.Center).Render(text)
}

// renderFlagsCell renders the repeat and blocked markers
func (lv *View) renderFlagsCell(task domain.Task, width int) string {
	var flags []string
	if task.Repeat != domain.RepeatNone {
		flags = append(flags, lv.styles.Repeat.Render("↻"))
	}
	if lv.blocked[task.ID] {
		flags = append(flags, lv.styles.Blocked.Render("⊘"))
	}

	content := strings.Join(flags, " ")
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}

// columnWidths holds the calculated column widths
type columnWidths struct {
	number   int
	title    int
	status   int
	priority int
	due      int
	flags    int
}

// calculateColumnWidths calculates responsive column widths based on available space
func (lv *View) calculateColumnWidths() columnWidths {
	const (
		numberWidth   = 5
		statusWidth   = 7
		priorityWidth = 4
		dueWidth      = 9
		flagsWidth    = 6
	)

	fixedWidth := numberWidth + statusWidth + priorityWidth + dueWidth + flagsWidth
	titleWidth := max(20, lv.width-fixedWidth)

	return columnWidths{
		number:   numberWidth,
		title:    titleWidth,
		status:   statusWidth,
		priority: priorityWidth,
		due:      dueWidth,
		flags:    flagsWidth,
	}
}

// calculateVisibleRows calculates how many rows fit in the visible area
func (lv *View) calculateVisibleRows() int {
	// chips + header + separator above, footer + separator below
	availableHeight := lv.height - 5
	if availableHeight < 1 {
		return 1
	}
	return availableHeight
}

// ensureCursorVisible adjusts scroll offset to keep the cursor on screen
func (lv *View) ensureCursorVisible() {
	visibleRows := lv.calculateVisibleRows()

	if lv.cursor < lv.scrollOffset {
		lv.scrollOffset = lv.cursor
	}

	if lv.cursor >= lv.scrollOffset+visibleRows {
		lv.scrollOffset = lv.cursor - visibleRows + 1
	}

	maxOffset := max(0, len(lv.tasks)-visibleRows)
	if lv.scrollOffset > maxOffset {
		lv.scrollOffset = maxOffset
	}
	if lv.scrollOffset < 0 {
		lv.scrollOffset = 0
	}
}

// truncateString truncates a string to fit within the given width
// If truncated, adds "..." at the end
func truncateString(s string, width int) string {
	if width <= 3 {
		return strings.Repeat(".", min(width, 3))
	}

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	return string(runes[:width-3]) + "..."
}
