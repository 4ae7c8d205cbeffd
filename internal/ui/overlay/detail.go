package overlay

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pomoban/internal/domain"
)

// DepLine is one dependency edge prepared for display.
type DepLine struct {
	Kind  domain.DepKind
	Title string
	Done  bool
}

// DetailPanel displays full task metadata, its dependency edges and the
// rendered notes in a scrollable body.
type DetailPanel struct {
	task       domain.Task
	lines      []string
	scrollY    int
	viewHeight int
	styles     *Styles
}

// NewDetailPanel creates a detail panel for the given task. Dependency
// edges are resolved to titles by the caller.
func NewDetailPanel(task domain.Task, deps []DepLine) *DetailPanel {
	d := &DetailPanel{
		task:       task,
		viewHeight: 18,
		styles:     New(),
	}
	d.lines = d.buildLines(deps)
	return d
}

// Init initializes the detail panel
func (d *DetailPanel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (d *DetailPanel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return d, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if d.scrollY < d.maxScroll() {
				d.scrollY++
			}
			return d, nil

		case "k", "up":
			if d.scrollY > 0 {
				d.scrollY--
			}
			return d, nil

		case "g":
			d.scrollY = 0
			return d, nil

		case "G":
			d.scrollY = d.maxScroll()
			return d, nil
		}
	}

	return d, nil
}

// buildLines prerenders the scrollable body.
func (d *DetailPanel) buildLines(deps []DepLine) []string {
	label := d.styles.Label
	value := d.styles.MenuItem

	var lines []string
	lines = append(lines, d.styles.MenuHeader.Render(d.task.Title))
	lines = append(lines, "")

	lines = append(lines, label.Render("Status:")+"  "+value.Render(d.task.Status.Label()))
	lines = append(lines, label.Render("Priority:")+"  "+value.Render(d.task.Priority.String()))

	if d.task.Due != nil {
		due := d.task.DueString()
		if d.task.Overdue(time.Now()) {
			due += "  " + d.styles.Error.Render("overdue")
		}
		lines = append(lines, label.Render("Due:")+"  "+value.Render(due))
	}
	if d.task.Repeat != domain.RepeatNone {
		lines = append(lines, label.Render("Repeat:")+"  "+value.Render(string(d.task.Repeat)))
	}

	lines = append(lines, label.Render("Created:")+"  "+value.Render(formatTime(d.task.CreatedAt)))
	lines = append(lines, label.Render("Updated:")+"  "+value.Render(formatTime(d.task.UpdatedAt)))

	if len(deps) > 0 {
		lines = append(lines, "")
		header := d.styles.MenuHeader.Render("Dependencies") + " " +
			d.styles.MenuCount.Render(fmt.Sprintf("(%d)", len(deps)))
		lines = append(lines, header)
		for _, dep := range deps {
			lines = append(lines, d.renderDep(dep))
		}
	}

	if d.task.Notes != "" {
		lines = append(lines, "")
		lines = append(lines, d.styles.MenuHeader.Render("Notes"))
		rendered := renderMarkdown(d.task.Notes, 66)
		lines = append(lines, strings.Split(strings.TrimRight(rendered, "\n"), "\n")...)
	}

	return lines
}

// renderDep formats one dependency edge line.
func (d *DetailPanel) renderDep(dep DepLine) string {
	marker := "⊘ blocked by:"
	if dep.Kind == domain.DepWaiting {
		marker = "◷ waiting on:"
	}

	style := d.styles.MenuItem
	suffix := ""
	if dep.Done {
		style = d.styles.MenuItemDisabled
		suffix = " ✓"
	}

	return "  " + style.Render(marker+" "+dep.Title+suffix)
}

// View renders the visible window of the detail body
func (d *DetailPanel) View() string {
	var b strings.Builder

	start := d.scrollY
	end := min(d.scrollY+d.viewHeight, len(d.lines))
	for i := start; i < end; i++ {
		b.WriteString(d.lines[i])
		b.WriteString("\n")
	}

	if d.maxScroll() > 0 {
		scrollInfo := d.styles.Footer.Render(
			fmt.Sprintf("[j/k to scroll, g/G to jump] (line %d/%d)", d.scrollY+1, len(d.lines)),
		)
		b.WriteString("\n")
		b.WriteString(scrollInfo)
	}

	return b.String()
}

// Title returns the overlay title
func (d *DetailPanel) Title() string {
	return "Task Details"
}

// Size returns the overlay dimensions
func (d *DetailPanel) Size() (width, height int) {
	d.viewHeight = 18
	return 74, 24
}

// maxScroll returns the maximum scroll position
func (d *DetailPanel) maxScroll() int {
	return max(0, len(d.lines)-d.viewHeight)
}

// formatTime formats a timestamp for display
func formatTime(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
