package overlay

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/ui/styles"
)

// SearchMsg is emitted on every keystroke for live filtering
type SearchMsg struct {
	Query string
}

// SearchOverlay is the single-line search bar. Enter keeps the query
// active and closes the bar; Esc clears it.
type SearchOverlay struct {
	input      textinput.Model
	matchCount int
}

var searchStyle = lipgloss.NewStyle().
	Foreground(styles.Text).
	Background(styles.Surface0)

var matchCountStyle = lipgloss.NewStyle().
	Foreground(styles.Overlay1).
	Background(styles.Surface0)

// NewSearchOverlay creates a new search overlay
func NewSearchOverlay(query string) *SearchOverlay {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "search title and notes..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50
	ti.SetValue(query)

	return &SearchOverlay{input: ti}
}

// SetMatchCount updates the match count display
func (s *SearchOverlay) SetMatchCount(count int) {
	s.matchCount = count
}

// Init implements tea.Model
func (s *SearchOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (s *SearchOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			// Keep the query active, just close the bar.
			return s, func() tea.Msg { return CloseOverlayMsg{} }

		case tea.KeyEsc:
			s.input.SetValue("")
			return s, tea.Batch(
				func() tea.Msg { return SearchMsg{Query: ""} },
				func() tea.Msg { return CloseOverlayMsg{} },
			)
		}
	}

	prev := s.input.Value()
	s.input, cmd = s.input.Update(msg)

	if s.input.Value() != prev {
		return s, tea.Batch(
			cmd,
			func() tea.Msg { return SearchMsg{Query: s.input.Value()} },
		)
	}

	return s, cmd
}

// View implements tea.Model
func (s *SearchOverlay) View() string {
	view := s.input.View()
	if s.input.Value() != "" {
		view += matchCountStyle.Render(fmt.Sprintf(" (%d matches)", s.matchCount))
	}
	return searchStyle.Render(view)
}

// Title implements Overlay (empty, the bar renders without chrome)
func (s *SearchOverlay) Title() string {
	return ""
}

// Size implements Overlay (full-width single line)
func (s *SearchOverlay) Size() (width, height int) {
	return 0, 1
}
