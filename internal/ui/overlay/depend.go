package overlay

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pomoban/internal/domain"
)

// DepAddedMsg is emitted when a dependency edge is added
type DepAddedMsg struct {
	TaskID string
	DepID  string
	Kind   domain.DepKind
}

// DepRemovedMsg is emitted when a dependency edge is removed
type DepRemovedMsg struct {
	TaskID string
	DepID  string
	Kind   domain.DepKind
}

// DependOverlay picks another task to link as a dependency of the
// selected one. Tab flips the edge kind, enter links the task under the
// cursor, x unlinks it. Cycle checking happens in the service.
type DependOverlay struct {
	task       domain.Task
	candidates []domain.Task
	existing   map[string]domain.DepKind
	cursor     int
	kind       domain.DepKind
	styles     *Styles
}

// NewDependOverlay creates a dependency picker for the given task.
// Candidates must not include the task itself; existing maps candidate
// IDs to the kind of the edge already present.
func NewDependOverlay(task domain.Task, candidates []domain.Task, existing map[string]domain.DepKind) *DependOverlay {
	if existing == nil {
		existing = make(map[string]domain.DepKind)
	}
	return &DependOverlay{
		task:       task,
		candidates: candidates,
		existing:   existing,
		kind:       domain.DepBlocker,
		styles:     New(),
	}
}

// Init initializes the overlay
func (m *DependOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *DependOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if m.cursor < len(m.candidates)-1 {
				m.cursor++
			}
			return m, nil

		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "g":
			m.cursor = 0
			return m, nil

		case "G":
			m.cursor = max(0, len(m.candidates)-1)
			return m, nil

		case "tab":
			if m.kind == domain.DepBlocker {
				m.kind = domain.DepWaiting
			} else {
				m.kind = domain.DepBlocker
			}
			return m, nil

		case "enter":
			return m, m.link()

		case "x":
			return m, m.unlink()
		}
	}

	return m, nil
}

// link emits a DepAddedMsg for the candidate under the cursor.
func (m *DependOverlay) link() tea.Cmd {
	if m.cursor >= len(m.candidates) {
		return nil
	}
	dep := m.candidates[m.cursor]
	if _, ok := m.existing[dep.ID]; ok {
		// Already linked, x removes it first.
		return nil
	}

	return tea.Batch(
		func() tea.Msg {
			return DepAddedMsg{TaskID: m.task.ID, DepID: dep.ID, Kind: m.kind}
		},
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// unlink emits a DepRemovedMsg for an existing edge under the cursor.
func (m *DependOverlay) unlink() tea.Cmd {
	if m.cursor >= len(m.candidates) {
		return nil
	}
	dep := m.candidates[m.cursor]
	kind, ok := m.existing[dep.ID]
	if !ok {
		return nil
	}

	return tea.Batch(
		func() tea.Msg {
			return DepRemovedMsg{TaskID: m.task.ID, DepID: dep.ID, Kind: kind}
		},
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// View renders the picker
func (m *DependOverlay) View() string {
	var b strings.Builder

	b.WriteString(m.styles.MenuItem.Render("Link for: " + m.task.Title))
	b.WriteString("\n")
	b.WriteString(m.renderKindSelector())
	b.WriteString("\n\n")

	if len(m.candidates) == 0 {
		b.WriteString(m.styles.MenuItemDisabled.Render("No other tasks to link"))
		b.WriteString("\n")
	} else {
		start, end := m.window()
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(i))
			b.WriteString("\n")
		}
		if end < len(m.candidates) {
			b.WriteString(m.styles.Footer.Render(fmt.Sprintf("  ↓ %d more ↓", len(m.candidates)-end)))
			b.WriteString("\n")
		}
	}

	footer := joinHints(m.styles,
		hint{"Tab", "Kind"},
		hint{"Enter", "Link"},
		hint{"x", "Unlink"},
		hint{"Esc", "Close"},
	)
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(footer))

	return b.String()
}

// renderKindSelector renders the blocker/waiting toggle line.
func (m *DependOverlay) renderKindSelector() string {
	kinds := []struct {
		kind  domain.DepKind
		label string
	}{
		{domain.DepBlocker, "blocked by"},
		{domain.DepWaiting, "waiting on"},
	}

	var parts []string
	for _, k := range kinds {
		style := m.styles.MenuItem
		indicator := " "
		if k.kind == m.kind {
			style = m.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%s]", indicator, k.label)))
	}

	return m.styles.MenuItem.Render("Kind: ") + strings.Join(parts, " ")
}

// renderRow renders one candidate row with cursor and edge markers.
func (m *DependOverlay) renderRow(i int) string {
	task := m.candidates[i]

	cursor := "  "
	if i == m.cursor {
		cursor = "▶ "
	}

	style := m.styles.MenuItem
	if i == m.cursor {
		style = m.styles.MenuItemActive
	} else if task.Status == domain.StatusDone {
		style = m.styles.MenuItemDisabled
	}

	marker := ""
	if kind, ok := m.existing[task.ID]; ok {
		if kind == domain.DepWaiting {
			marker = "  " + m.styles.MenuCount.Render("◷ waiting")
		} else {
			marker = "  " + m.styles.MenuCount.Render("⊘ blocker")
		}
	}

	return cursor + style.Render(truncateTitle(task.Title, 44)) + marker
}

// window returns the visible candidate range around the cursor.
func (m *DependOverlay) window() (start, end int) {
	const rows = 10
	start = 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end = min(start+rows, len(m.candidates))
	return start, end
}

// truncateTitle shortens a title to fit the picker row.
func truncateTitle(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-3]) + "..."
}

// Title returns the overlay title
func (m *DependOverlay) Title() string {
	return "Dependencies"
}

// Size returns the overlay dimensions
func (m *DependOverlay) Size() (width, height int) {
	return 64, 20
}
