package overlay

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"

	"pomoban/internal/ui/slash"
)

// expandSlash runs slash-command expansion at the textarea cursor. It
// reports whether anything was expanded; the caller still inserts the
// space or newline that triggered it.
func expandSlash(ta *textarea.Model, now time.Time) bool {
	value := ta.Value()
	row := ta.Line()
	info := ta.LineInfo()
	col := info.StartColumn + info.ColumnOffset

	lines := strings.Split(value, "\n")
	if row >= len(lines) {
		return false
	}
	pos := 0
	for i := 0; i < row; i++ {
		pos += len(lines[i]) + 1
	}
	runes := []rune(lines[row])
	if col > len(runes) {
		col = len(runes)
	}
	pos += len(string(runes[:col]))

	text, newPos, ok := slash.Expand(value, pos, now)
	if !ok {
		return false
	}

	ta.SetValue(text)
	moveCursor(ta, text, newPos)
	return true
}

// moveCursor places the textarea cursor at the given byte offset.
// SetValue leaves the cursor on the last row, so walk up from there.
func moveCursor(ta *textarea.Model, text string, pos int) {
	if pos > len(text) {
		pos = len(text)
	}
	row := strings.Count(text[:pos], "\n")
	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	col := len([]rune(text[lineStart:pos]))

	for i := strings.Count(text, "\n"); i > row; i-- {
		ta.CursorUp()
	}
	ta.SetCursor(col)
}
