package list

import (
	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/ui/styles"
)

// Styles holds the styling for the list view
type Styles struct {
	// Table structure
	HeaderCell lipgloss.Style
	Separator  lipgloss.Style

	// Row styles
	Row       lipgloss.Style
	RowActive lipgloss.Style

	// Status colors
	StatusTodo  lipgloss.Style
	StatusDoing lipgloss.Style
	StatusDone  lipgloss.Style

	// Priority colors
	PriorityP0 lipgloss.Style
	PriorityP1 lipgloss.Style
	PriorityP2 lipgloss.Style

	// Due date
	Due     lipgloss.Style
	Overdue lipgloss.Style

	// Flags
	Repeat  lipgloss.Style
	Blocked lipgloss.Style

	// Indicators
	Cursor lipgloss.Style
	Active lipgloss.Style

	// Filter chips
	Chip       lipgloss.Style
	ChipActive lipgloss.Style

	// Stats footer
	Footer lipgloss.Style
}

// NewStyles creates a new Styles instance with the Catppuccin Macchiato theme
func NewStyles() *Styles {
	return &Styles{
		HeaderCell: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Row: lipgloss.NewStyle().
			Foreground(styles.Text),

		RowActive: lipgloss.NewStyle().
			Foreground(styles.Text).
			Background(styles.Surface0),

		StatusTodo: lipgloss.NewStyle().
			Foreground(styles.Blue),

		StatusDoing: lipgloss.NewStyle().
			Foreground(styles.Yellow),

		StatusDone: lipgloss.NewStyle().
			Foreground(styles.Green),

		PriorityP0: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),

		PriorityP1: lipgloss.NewStyle().
			Foreground(styles.Peach).
			Bold(true),

		PriorityP2: lipgloss.NewStyle().
			Foreground(styles.Overlay1),

		Due: lipgloss.NewStyle().
			Foreground(styles.Subtext0),

		Overdue: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),

		Repeat: lipgloss.NewStyle().
			Foreground(styles.Teal),

		Blocked: lipgloss.NewStyle().
			Foreground(styles.Red),

		Cursor: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		Active: lipgloss.NewStyle().
			Foreground(styles.Peach).
			Bold(true),

		Chip: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			Background(styles.Surface0).
			MarginRight(1),

		ChipActive: lipgloss.NewStyle().
			Foreground(styles.Crust).
			Background(styles.Blue).
			Bold(true).
			MarginRight(1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0),
	}
}
