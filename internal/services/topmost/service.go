// Package topmost keeps the app's window in front. Terminal emulators have
// no always-on-top attribute, so the closest equivalent is the xterm
// raise-window operation (CSI 5 t), re-asserted on a short interval and
// whenever terminal focus changes. Terminals that ignore the sequence
// simply stay put.
package topmost

import (
	"io"
	"log/slog"
	"time"
)

// raiseSeq is the xterm window manipulation "raise to front" sequence.
const raiseSeq = "\x1b[5t"

// DefaultInterval is how often the raise is re-asserted while enabled.
const DefaultInterval = 2 * time.Second

// Service writes raise requests to the terminal.
type Service struct {
	out     io.Writer
	enabled bool
	logger  *slog.Logger
}

// NewService creates a watchdog writing to out, typically the same stream
// the TUI renders to. The sequence is a window op, not text, so interleaving
// with frames is safe.
func NewService(out io.Writer, enabled bool, logger *slog.Logger) *Service {
	return &Service{out: out, enabled: enabled, logger: logger}
}

// Enabled reports whether the watchdog is asserting.
func (s *Service) Enabled() bool {
	return s.enabled
}

// Toggle flips the watchdog on or off and returns the new state.
func (s *Service) Toggle() bool {
	s.enabled = !s.enabled
	s.logger.Debug("topmost toggled", "enabled", s.enabled)
	return s.enabled
}

// Raise asks the terminal to come to the front. No-op while disabled.
func (s *Service) Raise() error {
	if !s.enabled {
		return nil
	}
	if _, err := io.WriteString(s.out, raiseSeq); err != nil {
		s.logger.Warn("raise failed", "error", err)
		return err
	}
	return nil
}
