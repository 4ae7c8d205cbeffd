package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"pomoban/internal/config"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// HelpOverlay displays the keybinding reference, built from the active
// keymap so rebound keys show up correctly.
type HelpOverlay struct {
	keys       config.Keymap
	styles     *Styles
	scroll     int
	maxScroll  int
	viewHeight int
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay(keys config.Keymap) *HelpOverlay {
	return &HelpOverlay{
		keys:       keys,
		styles:     New(),
		viewHeight: 20,
	}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "?":
			return h, func() tea.Msg { return CloseOverlayMsg{} }

		case "j", "down":
			if h.scroll < h.maxScroll {
				h.scroll++
			}
			return h, nil

		case "k", "up":
			if h.scroll > 0 {
				h.scroll--
			}
			return h, nil

		case "g":
			h.scroll = 0
			return h, nil

		case "G":
			h.scroll = h.maxScroll
			return h, nil
		}
	}

	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var content strings.Builder
	for i, cat := range h.categories() {
		if i > 0 {
			content.WriteString("\n")
		}

		content.WriteString(h.styles.MenuHeader.Render(cat.Name + ":"))
		content.WriteString("\n")

		for _, binding := range cat.Bindings {
			line := "  " + h.styles.MenuKey.Render(binding.Key) + "  " +
				h.styles.MenuItem.Render(binding.Description)
			content.WriteString(line)
			content.WriteString("\n")
		}
	}

	lines := strings.Split(content.String(), "\n")
	h.maxScroll = max(0, len(lines)-h.viewHeight)

	start := h.scroll
	end := min(h.scroll+h.viewHeight, len(lines))
	result := strings.Join(lines[start:end], "\n")

	if h.maxScroll > 0 {
		scrollInfo := h.styles.Footer.Render(
			"[" + h.styles.MenuKey.Render("j/k") + " to scroll, " +
				h.styles.MenuKey.Render("g/G") + " to jump]",
		)
		result += "\n\n" + scrollInfo
	}

	return result
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	h.viewHeight = 20
	return 52, 24
}

// categories returns all keybinding categories
func (h *HelpOverlay) categories() []KeyCategory {
	k := h.keys
	return []KeyCategory{
		{
			Name: "Navigation",
			Bindings: []KeyBinding{
				{Key: "h/l", Description: "Move between columns"},
				{Key: "j/k", Description: "Move up/down"},
				{Key: k.Goto + "g", Description: "Jump to top"},
				{Key: k.Goto + "e", Description: "Jump to bottom"},
				{Key: k.Goto + "h", Description: "Jump to first column"},
				{Key: k.Goto + "l", Description: "Jump to last column"},
			},
		},
		{
			Name: "Timer",
			Bindings: []KeyBinding{
				{Key: keyLabel(k.Start), Description: "Start pomodoro on selected task"},
				{Key: keyLabel(k.Pause), Description: "Pause/resume timer"},
				{Key: keyLabel(k.Reset), Description: "Reset timer"},
				{Key: keyLabel(k.Done), Description: "Complete task"},
			},
		},
		{
			Name: "Tasks",
			Bindings: []KeyBinding{
				{Key: keyLabel(k.Create), Description: "Create task"},
				{Key: keyLabel(k.Edit), Description: "Edit task"},
				{Key: keyLabel(k.Notes), Description: "Edit notes"},
				{Key: keyLabel(k.Delete), Description: "Delete task"},
				{Key: keyLabel(k.Detail), Description: "Show task details"},
				{Key: keyLabel(k.Depend), Description: "Manage dependencies"},
				{Key: k.MoveLeft + "/" + k.MoveRight, Description: "Move task across columns"},
			},
		},
		{
			Name: "Modes",
			Bindings: []KeyBinding{
				{Key: keyLabel(k.Search), Description: "Search"},
				{Key: keyLabel(k.Filter), Description: "Filter menu"},
				{Key: keyLabel(k.Sort), Description: "Sort menu"},
				{Key: keyLabel(k.View), Description: "Toggle board/list view"},
				{Key: keyLabel(k.Help), Description: "Help (this screen)"},
			},
		},
		{
			Name: "Other",
			Bindings: []KeyBinding{
				{Key: keyLabel(k.Topmost), Description: "Toggle always-on-top"},
				{Key: keyLabel(k.Quit), Description: "Quit"},
			},
		},
	}
}

// keyLabel makes unprintable bindings readable in the listing.
func keyLabel(key string) string {
	switch key {
	case " ":
		return "Space"
	case "enter":
		return "Enter"
	case "esc":
		return "Esc"
	default:
		return key
	}
}
