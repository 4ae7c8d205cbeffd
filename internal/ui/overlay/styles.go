package overlay

import (
	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/ui/styles"
)

// Styles holds all overlay-specific styles
type Styles struct {
	// Overlay is the base overlay container style
	Overlay lipgloss.Style
	// Title is the overlay title style
	Title lipgloss.Style
	// Label is the right-aligned form label column
	Label lipgloss.Style
	// Focus marks the focused form label
	Focus lipgloss.Style
	// MenuItem is the default menu item style
	MenuItem lipgloss.Style
	// MenuItemActive is the highlighted/selected menu item style
	MenuItemActive lipgloss.Style
	// MenuItemDisabled is the dimmed menu item style
	MenuItemDisabled lipgloss.Style
	// MenuKey is the style for keybinding hints
	MenuKey lipgloss.Style
	// MenuHeader is the style for section headers
	MenuHeader lipgloss.Style
	// MenuCount is the style for count indicators
	MenuCount lipgloss.Style
	// Separator is the style for divider lines
	Separator lipgloss.Style
	// Footer is the style for overlay footer text
	Footer lipgloss.Style
	// Error is the style for validation messages
	Error lipgloss.Style
}

// New creates a new Styles instance using the Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(styles.Surface2).
			Background(styles.Base).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(styles.Text).
			Bold(true).
			MarginBottom(1),

		Label: lipgloss.NewStyle().
			Foreground(styles.Teal).
			Width(10).
			Align(lipgloss.Right),

		Focus: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true).
			Width(10).
			Align(lipgloss.Right),

		MenuItem: lipgloss.NewStyle().
			Foreground(styles.Text),

		MenuItemActive: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuItemDisabled: lipgloss.NewStyle().
			Foreground(styles.Overlay0),

		MenuKey: lipgloss.NewStyle().
			Foreground(styles.Yellow).
			Bold(true),

		MenuHeader: lipgloss.NewStyle().
			Foreground(styles.Blue).
			Bold(true),

		MenuCount: lipgloss.NewStyle().
			Foreground(styles.Green),

		Separator: lipgloss.NewStyle().
			Foreground(styles.Surface1),

		Footer: lipgloss.NewStyle().
			Foreground(styles.Subtext0).
			MarginTop(1),

		Error: lipgloss.NewStyle().
			Foreground(styles.Red).
			Bold(true),
	}
}
