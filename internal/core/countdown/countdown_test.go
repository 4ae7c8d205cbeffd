package countdown

import (
	"testing"

	"pomoban/internal/domain"
)

func TestNew_Defaults(t *testing.T) {
	e := New(0, 0)

	if e.Budget() != DefaultWorkSec {
		t.Errorf("Budget() = %d, want %d", e.Budget(), DefaultWorkSec)
	}
	if !e.Idle() {
		t.Error("new engine should be idle")
	}
	if e.Phase() != domain.SessionWork {
		t.Errorf("Phase() = %v, want %v", e.Phase(), domain.SessionWork)
	}
	if e.Remaining() != DefaultWorkSec {
		t.Errorf("Remaining() = %d, want %d", e.Remaining(), DefaultWorkSec)
	}
}

func TestEngine_StartPauseResume(t *testing.T) {
	e := New(10, 5)

	e.Start()
	if !e.Running() {
		t.Fatal("Start() should leave the engine running")
	}

	e.Pause()
	if !e.Paused() {
		t.Fatal("Pause() should leave the engine paused")
	}

	// Paused countdown does not advance.
	if rolled := e.Tick(); rolled {
		t.Error("Tick() while paused should not roll over")
	}
	if e.Remaining() != 10 {
		t.Errorf("Remaining() = %d, want 10 after paused tick", e.Remaining())
	}

	e.Resume()
	if !e.Running() {
		t.Fatal("Resume() should leave the engine running")
	}
}

func TestEngine_GuardsWhenIdle(t *testing.T) {
	e := New(10, 5)

	e.Pause()
	if !e.Idle() {
		t.Error("Pause() on an idle engine should be a no-op")
	}

	e.Resume()
	if !e.Idle() {
		t.Error("Resume() on an idle engine should be a no-op")
	}

	if e.Tick() {
		t.Error("Tick() on an idle engine should not roll over")
	}
	if e.Remaining() != 10 {
		t.Errorf("Remaining() = %d, want 10 after idle tick", e.Remaining())
	}
}

func TestEngine_TickRollsWorkToBreak(t *testing.T) {
	e := New(3, 2)
	e.Start()

	for i := 0; i < 2; i++ {
		if e.Tick() {
			t.Fatalf("Tick() rolled over after %d ticks", i+1)
		}
	}

	if !e.Tick() {
		t.Fatal("Tick() should roll over when the budget is spent")
	}
	if e.Phase() != domain.SessionBreak {
		t.Errorf("Phase() = %v, want %v", e.Phase(), domain.SessionBreak)
	}
	if e.Remaining() != 2 {
		t.Errorf("Remaining() = %d, want full break budget 2", e.Remaining())
	}
	if !e.Running() {
		t.Error("engine should keep running through the rollover")
	}
}

func TestEngine_TickRollsBreakBackToWork(t *testing.T) {
	e := New(1, 1)
	e.Start()

	if !e.Tick() {
		t.Fatal("first tick should roll into break")
	}
	if !e.Tick() {
		t.Fatal("second tick should roll back to work")
	}
	if e.Phase() != domain.SessionWork {
		t.Errorf("Phase() = %v, want %v", e.Phase(), domain.SessionWork)
	}
	if e.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want full work budget 1", e.Remaining())
	}
}

// A full default work phase flips to break exactly once.
func TestEngine_FullWorkPhase(t *testing.T) {
	e := New(DefaultWorkSec, DefaultBreakSec)
	e.Start()

	rollovers := 0
	for i := 0; i < DefaultWorkSec; i++ {
		if e.Tick() {
			rollovers++
		}
	}

	if rollovers != 1 {
		t.Errorf("rollovers = %d, want exactly 1", rollovers)
	}
	if e.Phase() != domain.SessionBreak {
		t.Errorf("Phase() = %v, want %v", e.Phase(), domain.SessionBreak)
	}
}

func TestEngine_Reset(t *testing.T) {
	e := New(5, 3)
	e.Start()
	e.Tick()
	e.Reset()

	if !e.Idle() {
		t.Error("Reset() should leave the engine idle")
	}
	if e.Phase() != domain.SessionWork {
		t.Errorf("Phase() = %v, want %v", e.Phase(), domain.SessionWork)
	}
	if e.Remaining() != 5 {
		t.Errorf("Remaining() = %d, want 5", e.Remaining())
	}
}

func TestEngine_Clock(t *testing.T) {
	tests := []struct {
		remaining int
		want      string
	}{
		{25 * 60, "25:00"},
		{5*60 + 3, "05:03"},
		{61, "01:01"},
		{9, "00:09"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			e := New(tt.remaining, 1)
			if got := e.Clock(); got != tt.want {
				t.Errorf("Clock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_Progress(t *testing.T) {
	e := New(4, 2)
	e.Start()

	if got := e.Progress(); got != 0 {
		t.Errorf("Progress() = %v, want 0 at start", got)
	}

	e.Tick()
	e.Tick()
	if got := e.Progress(); got != 0.5 {
		t.Errorf("Progress() = %v, want 0.5 at half", got)
	}
}
