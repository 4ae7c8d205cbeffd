package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pomoban/internal/domain"
)

// filterMode represents the current selection mode
type filterMode string

const (
	filterModeNormal   filterMode = "normal"
	filterModeStatus   filterMode = "status"
	filterModePriority filterMode = "priority"
	filterModeRepeat   filterMode = "repeat"
)

// FilterMenu is a menu overlay for task filtering. It mutates the shared
// filter in place; the board rereads it on every render.
type FilterMenu struct {
	filter *domain.Filter
	styles *Styles
	mode   filterMode
}

// NewFilterMenu creates a new filter menu for the given filter
func NewFilterMenu(filter *domain.Filter) *FilterMenu {
	return &FilterMenu{
		filter: filter,
		styles: New(),
		mode:   filterModeNormal,
	}
}

// Init initializes the menu
func (m *FilterMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *FilterMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case filterModeNormal:
			return m.handleNormalMode(msg)
		case filterModeStatus:
			return m.handleStatusMode(msg)
		case filterModePriority:
			return m.handlePriorityMode(msg)
		case filterModeRepeat:
			return m.handleRepeatMode(msg)
		}
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode
func (m *FilterMenu) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return CloseOverlayMsg{} }

	case "s":
		m.mode = filterModeStatus
		return m, nil

	case "p":
		m.mode = filterModePriority
		return m, nil

	case "r":
		m.mode = filterModeRepeat
		return m, nil

	case "o":
		m.filter.ToggleOverdue()
		return m, nil

	case "c":
		m.filter.Clear()
		return m, nil
	}

	return m, nil
}

// handleStatusMode handles keys in status selection mode
func (m *FilterMenu) handleStatusMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = filterModeNormal
		return m, nil

	case "t":
		m.filter.ToggleStatus(domain.StatusTodo)
		m.mode = filterModeNormal
		return m, nil

	case "d":
		m.filter.ToggleStatus(domain.StatusDoing)
		m.mode = filterModeNormal
		return m, nil

	case "n":
		m.filter.ToggleStatus(domain.StatusDone)
		m.mode = filterModeNormal
		return m, nil
	}

	return m, nil
}

// handlePriorityMode handles keys in priority selection mode
func (m *FilterMenu) handlePriorityMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = filterModeNormal
		return m, nil

	case "0":
		m.filter.TogglePriority(domain.P0)
		m.mode = filterModeNormal
		return m, nil

	case "1":
		m.filter.TogglePriority(domain.P1)
		m.mode = filterModeNormal
		return m, nil

	case "2":
		m.filter.TogglePriority(domain.P2)
		m.mode = filterModeNormal
		return m, nil
	}

	return m, nil
}

// handleRepeatMode handles keys in repeat rule selection mode
func (m *FilterMenu) handleRepeatMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = filterModeNormal
		return m, nil

	case "n":
		m.filter.ToggleRepeat(domain.RepeatNone)
		m.mode = filterModeNormal
		return m, nil

	case "d":
		m.filter.ToggleRepeat(domain.RepeatDaily)
		m.mode = filterModeNormal
		return m, nil

	case "w":
		m.filter.ToggleRepeat(domain.RepeatWeekly)
		m.mode = filterModeNormal
		return m, nil

	case "m":
		m.filter.ToggleRepeat(domain.RepeatMonthly)
		m.mode = filterModeNormal
		return m, nil
	}

	return m, nil
}

// View renders the menu
func (m *FilterMenu) View() string {
	var b strings.Builder

	b.WriteString(m.renderFilterLine("Status", "s", []filterOption{
		{key: "t", label: "To Do", active: m.filter.Status[domain.StatusTodo]},
		{key: "d", label: "Doing", active: m.filter.Status[domain.StatusDoing]},
		{key: "n", label: "Done", active: m.filter.Status[domain.StatusDone]},
	}, m.mode == filterModeStatus))

	b.WriteString(m.renderFilterLine("Priority", "p", []filterOption{
		{key: "0", label: "P0", active: m.filter.Priority[domain.P0]},
		{key: "1", label: "P1", active: m.filter.Priority[domain.P1]},
		{key: "2", label: "P2", active: m.filter.Priority[domain.P2]},
	}, m.mode == filterModePriority))

	b.WriteString(m.renderFilterLine("Repeat", "r", []filterOption{
		{key: "n", label: "None", active: m.filter.Repeat[domain.RepeatNone]},
		{key: "d", label: "Daily", active: m.filter.Repeat[domain.RepeatDaily]},
		{key: "w", label: "Weekly", active: m.filter.Repeat[domain.RepeatWeekly]},
		{key: "m", label: "Monthly", active: m.filter.Repeat[domain.RepeatMonthly]},
	}, m.mode == filterModeRepeat))

	b.WriteString(m.styles.Separator.Render("───────────────────────────────────────"))
	b.WriteString("\n")

	checkbox := "[ ]"
	if m.filter.OverdueOnly {
		checkbox = "[●]"
	}
	line := m.styles.MenuKey.Render("[o]") + " " +
		m.styles.MenuItem.Render(checkbox+" Overdue only")
	b.WriteString(line)
	b.WriteString("\n")

	b.WriteString(m.styles.Separator.Render("───────────────────────────────────────"))
	b.WriteString("\n")

	line = m.styles.MenuKey.Render("[c]") + " " +
		m.styles.MenuItem.Render("Clear all filters")
	b.WriteString(line)
	b.WriteString("\n")

	if m.mode != filterModeNormal {
		hint := m.styles.Footer.Render("Press key to toggle filter, Esc to cancel")
		b.WriteString("\n")
		b.WriteString(hint)
	}

	return b.String()
}

// filterOption represents a single filter option
type filterOption struct {
	key    string
	label  string
	active bool
}

// renderFilterLine renders a filter category line
func (m *FilterMenu) renderFilterLine(category string, categoryKey string, options []filterOption, selecting bool) string {
	var b strings.Builder

	keyStyle := m.styles.MenuKey
	if selecting {
		keyStyle = m.styles.MenuItemActive
	}
	b.WriteString(keyStyle.Render(fmt.Sprintf("[%s]", categoryKey)))
	b.WriteString(" ")
	b.WriteString(m.styles.MenuItem.Render(category + ":"))
	b.WriteString(" ")

	for i, opt := range options {
		if i > 0 {
			b.WriteString(" ")
		}

		indicator := " "
		style := m.styles.MenuItem
		if opt.active {
			indicator = "●"
			style = m.styles.MenuItemActive
		}

		optStr := fmt.Sprintf("%s=%s", opt.key, opt.label)
		b.WriteString(style.Render(fmt.Sprintf("[%s%s]", indicator, optStr)))
	}

	b.WriteString("\n")
	return b.String()
}

// Title returns the overlay title
func (m *FilterMenu) Title() string {
	return "Filter Tasks"
}

// Size returns the overlay dimensions
func (m *FilterMenu) Size() (width, height int) {
	// 3 filter lines + overdue + clear + separators + footer hint
	return 58, 12
}
