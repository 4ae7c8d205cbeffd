package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pomoban/internal/domain"
)

// SortOption represents a sort option with metadata
type SortOption struct {
	Key         string
	Label       string
	Field       domain.SortField
	Description string
}

// SortMenu is a menu overlay for sorting configuration
type SortMenu struct {
	sort    *domain.Sort
	options []SortOption
	styles  *Styles
}

// NewSortMenu creates a new sort menu for the given sort state
func NewSortMenu(sort *domain.Sort) *SortMenu {
	return &SortMenu{
		sort:   sort,
		styles: New(),
		options: []SortOption{
			{
				Key:         "p",
				Label:       "Priority",
				Field:       domain.SortByPriority,
				Description: "Sort by priority (P0 first when ascending)",
			},
			{
				Key:         "d",
				Label:       "Due",
				Field:       domain.SortByDue,
				Description: "Sort by due date (tasks without one last)",
			},
			{
				Key:         "u",
				Label:       "Updated",
				Field:       domain.SortByUpdated,
				Description: "Sort by last updated time",
			},
		},
	}
}

// Init initializes the menu
func (m *SortMenu) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SortMenu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg { return CloseOverlayMsg{} }

		case "p", "d", "u":
			for _, opt := range m.options {
				if opt.Key == msg.String() {
					// Toggle handles both field change and direction flip.
					m.sort.Toggle(opt.Field)
					return m, func() tea.Msg {
						return SelectionMsg{
							Key:   msg.String(),
							Value: m.sort,
						}
					}
				}
			}
		}
	}

	return m, nil
}

// View renders the menu
func (m *SortMenu) View() string {
	var b strings.Builder

	for _, opt := range m.options {
		isActive := m.sort.Field == opt.Field

		var line strings.Builder

		keyStyle := m.styles.MenuKey
		if !isActive {
			keyStyle = m.styles.MenuItem
		}
		line.WriteString(keyStyle.Render("[" + opt.Key + "]"))
		line.WriteString(" ")

		labelStyle := m.styles.MenuItem
		if isActive {
			labelStyle = m.styles.MenuItemActive
		}
		line.WriteString(labelStyle.Render(opt.Label))
		line.WriteString(" ")

		line.WriteString(m.styles.Footer.Render("(" + opt.Description + ")"))

		if isActive {
			line.WriteString(" ")
			line.WriteString(m.styles.MenuItemActive.Render("●"))
			line.WriteString(" ")

			arrow := "↑"
			if m.sort.Order == domain.SortDesc {
				arrow = "↓"
			}
			line.WriteString(m.styles.MenuItemActive.Render(arrow))
		}

		b.WriteString(line.String())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("Press same key to toggle direction • Esc to close"))

	return b.String()
}

// Title returns the overlay title
func (m *SortMenu) Title() string {
	return "Sort"
}

// Size returns the overlay dimensions
func (m *SortMenu) Size() (width, height int) {
	return 70, len(m.options) + 5
}
