package styles

import (
	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/domain"
)

// Styles holds all the UI styles
type Styles struct {
	// Board
	Board              lipgloss.Style
	Column             lipgloss.Style
	ColumnHeader       lipgloss.Style
	ColumnHeaderActive lipgloss.Style

	// Cards
	Card        lipgloss.Style
	CardActive  lipgloss.Style
	CardBlocked lipgloss.Style
	TaskTitle   lipgloss.Style
	TaskMeta    lipgloss.Style

	// Badges
	PriorityBadge func(priority int) lipgloss.Style
	DueBadge      lipgloss.Style
	OverdueBadge  lipgloss.Style
	RepeatBadge   lipgloss.Style
	BlockedBadge  lipgloss.Style
	ActiveMark    lipgloss.Style

	// Pomodoro widget
	PhaseWork   lipgloss.Style
	PhaseBreak  lipgloss.Style
	TimerClock  lipgloss.Style
	TimerState  lipgloss.Style
	RestHeading lipgloss.Style
	RestBody    lipgloss.Style

	// List view
	FilterChip       lipgloss.Style
	FilterChipActive lipgloss.Style
	ListRow          lipgloss.Style
	ListRowActive    lipgloss.Style
	StatsFooter      lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusInfo lipgloss.Style

	// Overlays
	Overlay          lipgloss.Style
	OverlayTitle     lipgloss.Style
	FieldLabel       lipgloss.Style
	FieldLabelActive lipgloss.Style
	MenuItem         lipgloss.Style
	MenuItemActive   lipgloss.Style
	MenuItemDisabled lipgloss.Style
	MenuKey          lipgloss.Style
	Separator        lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Board: lipgloss.NewStyle().
			Background(Base),

		Column: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1),

		ColumnHeader: lipgloss.NewStyle().
			Foreground(Subtext0).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		ColumnHeaderActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true).
			Padding(0, 1).
			MarginBottom(1),

		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface1).
			Padding(0, 1).
			MarginBottom(1),

		CardActive: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Lavender).
			Padding(0, 1).
			MarginBottom(1),

		CardBlocked: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Padding(0, 1).
			MarginBottom(1),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Text),

		TaskMeta: lipgloss.NewStyle().
			Foreground(Overlay1),

		PriorityBadge: func(priority int) lipgloss.Style {
			color := PriorityColors[min(priority, len(PriorityColors)-1)]
			return lipgloss.NewStyle().
				Foreground(Base).
				Background(color).
				Padding(0, 1).
				Bold(true)
		},

		DueBadge: lipgloss.NewStyle().
			Foreground(Subtext0),

		OverdueBadge: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		RepeatBadge: lipgloss.NewStyle().
			Foreground(Teal),

		BlockedBadge: lipgloss.NewStyle().
			Foreground(Red),

		ActiveMark: lipgloss.NewStyle().
			Foreground(Peach).
			Bold(true),

		PhaseWork: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		PhaseBreak: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		TimerClock: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		TimerState: lipgloss.NewStyle().
			Foreground(Overlay1),

		RestHeading: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		RestBody: lipgloss.NewStyle().
			Foreground(Subtext0),

		FilterChip: lipgloss.NewStyle().
			Foreground(Subtext0).
			Background(Surface0).
			Padding(0, 1),

		FilterChipActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Blue).
			Bold(true).
			Padding(0, 1),

		ListRow: lipgloss.NewStyle().
			Foreground(Text),

		ListRowActive: lipgloss.NewStyle().
			Foreground(Base).
			Background(Lavender).
			Bold(true),

		StatsFooter: lipgloss.NewStyle().
			Foreground(Overlay1).
			MarginTop(1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Background(Blue).
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Surface2).
			Background(Base).
			Padding(1, 2),

		OverlayTitle: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true).
			MarginBottom(1),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Subtext0),

		FieldLabelActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuItem: lipgloss.NewStyle().
			Foreground(Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		Separator: lipgloss.NewStyle().
			Foreground(Surface1),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastSuccess: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Green).
			Foreground(Green).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// Phase returns the label style for a pomodoro phase
func (s *Styles) Phase(kind domain.SessionKind) lipgloss.Style {
	if kind == domain.SessionBreak {
		return s.PhaseBreak
	}
	return s.PhaseWork
}

// Status returns the accent color for a column status
func (s *Styles) Status(status domain.Status) lipgloss.Color {
	if c, ok := StatusColors[string(status)]; ok {
		return c
	}
	return Subtext0
}
