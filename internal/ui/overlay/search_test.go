package overlay

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// searchQueries pulls every SearchMsg out of the drained messages.
func searchQueries(msgs []tea.Msg) []string {
	var queries []string
	for _, m := range msgs {
		if s, ok := m.(SearchMsg); ok {
			queries = append(queries, s.Query)
		}
	}
	return queries
}

func TestSearchOverlayEmitsOnKeystroke(t *testing.T) {
	s := NewSearchOverlay("")

	model, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("bug")})
	s = model.(*SearchOverlay)

	queries := searchQueries(drainCmd(cmd))
	if len(queries) != 1 || queries[0] != "bug" {
		t.Fatalf("expected SearchMsg %q, got %v", "bug", queries)
	}
	if s.input.Value() != "bug" {
		t.Errorf("expected input value %q, got %q", "bug", s.input.Value())
	}
}

func TestSearchOverlayPrefillsQuery(t *testing.T) {
	s := NewSearchOverlay("parser")
	if s.input.Value() != "parser" {
		t.Errorf("expected prefilled query %q, got %q", "parser", s.input.Value())
	}
}

func TestSearchOverlayEnterKeepsQuery(t *testing.T) {
	s := NewSearchOverlay("bug")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})

	msgs := drainCmd(cmd)
	if !containsClose(msgs) {
		t.Error("enter should close the search bar")
	}
	if len(searchQueries(msgs)) != 0 {
		t.Error("enter should not change the query")
	}
}

func TestSearchOverlayEscClearsQuery(t *testing.T) {
	s := NewSearchOverlay("bug")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEscape})

	msgs := drainCmd(cmd)
	if !containsClose(msgs) {
		t.Error("esc should close the search bar")
	}
	queries := searchQueries(msgs)
	if len(queries) != 1 || queries[0] != "" {
		t.Errorf("esc should clear the query, got %v", queries)
	}
}

func TestSearchOverlayViewShowsMatchCount(t *testing.T) {
	s := NewSearchOverlay("bug")
	s.SetMatchCount(3)

	view := s.View()
	if !strings.Contains(view, "(3 matches)") {
		t.Errorf("expected match count in view, got %q", view)
	}

	// No count without a query.
	empty := NewSearchOverlay("")
	if strings.Contains(empty.View(), "matches") {
		t.Error("empty search should not show a match count")
	}
}
