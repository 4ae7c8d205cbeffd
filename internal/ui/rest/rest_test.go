package rest

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"pomoban/internal/core/countdown"
	"pomoban/internal/ui/styles"
)

func breakEngine(t *testing.T) *countdown.Engine {
	t.Helper()
	eng := countdown.New(1, 5*60)
	eng.Start()
	if !eng.Tick() {
		t.Fatal("expected rollover into break")
	}
	return eng
}

func TestRenderContents(t *testing.T) {
	v := NewView(styles.New(), 80, 24)
	out := ansi.Strip(v.Render(breakEngine(t)))

	if !strings.Contains(out, "Rest Time") {
		t.Error("expected heading")
	}
	if !strings.Contains(out, "05:00") {
		t.Error("expected break clock")
	}
	if !strings.Contains(out, "Press ESC to exit fullscreen") {
		t.Error("expected exit hint")
	}
}

func TestRenderFillsScreen(t *testing.T) {
	v := NewView(styles.New(), 40, 12)
	out := ansi.Strip(v.Render(breakEngine(t)))

	lines := strings.Split(out, "\n")
	if len(lines) != 12 {
		t.Errorf("expected 12 lines, got %d", len(lines))
	}
}

func TestSetDimensions(t *testing.T) {
	v := NewView(styles.New(), 40, 12)
	v.SetDimensions(60, 20)
	out := ansi.Strip(v.Render(breakEngine(t)))

	lines := strings.Split(out, "\n")
	if len(lines) != 20 {
		t.Errorf("expected 20 lines after resize, got %d", len(lines))
	}
}
