// Package slash expands /commands typed in the notes editor.
//
// Expansion triggers when the user hits space or enter right after a
// command token: the token (and for two-word commands, its argument) is
// replaced in place and the triggering key is inserted afterwards by the
// caller. Unknown tokens are left untouched.
package slash

import (
	"strings"
	"time"
)

// Timestamp formats used by the date/time commands.
const (
	StampFormat = "Mon, 02 Jan 2006 • 15:04"
	DayFormat   = "Mon, 02 Jan 2006"
)

// oneToken maps single-word commands to their expansion.
var oneToken = map[string]func(now time.Time) string{
	"/now":       func(now time.Time) string { return now.Format(StampFormat) },
	"/today":     func(now time.Time) string { return now.Format(DayFormat) },
	"/yesterday": func(now time.Time) string { return now.AddDate(0, 0, -1).Format(DayFormat) },
	"/tomorrow":  func(now time.Time) string { return now.AddDate(0, 0, 1).Format(DayFormat) },
	"/log":       func(now time.Time) string { return "### " + now.Format(StampFormat) },
	"/start":     func(now time.Time) string { return "Started: " + now.Format(StampFormat) },
	"/done":      func(now time.Time) string { return "Completed: " + now.Format(StampFormat) },
	"/review":    func(now time.Time) string { return "Review: " + now.Format(StampFormat) },
	"/update":    func(now time.Time) string { return "Last updated: " + now.Format(StampFormat) },
}

// twoToken maps command -> allowed arguments. An empty set accepts any
// argument (used by /tag, which sanitizes instead).
var twoToken = map[string]map[string]bool{
	"/priority": {"high": true, "med": true, "low": true},
	"/status":   {"todo": true, "doing": true, "done": true},
	"/tag":      nil,
}

// Expand looks at the token(s) ending at pos and substitutes the command
// output. It returns the new buffer, the new cursor position, and whether
// anything was expanded. The expansion carries no trailing whitespace.
func Expand(text string, pos int, now time.Time) (string, int, bool) {
	if pos < 0 || pos > len(text) {
		return text, pos, false
	}

	lineStart := strings.LastIndexByte(text[:pos], '\n') + 1
	line := text[lineStart:pos]

	// The command must sit immediately before the cursor.
	if line == "" || isSpace(line[len(line)-1]) {
		return text, pos, false
	}

	tokStart := lastTokenStart(line)
	token := line[tokStart:]

	// Single-word command.
	if fn, ok := oneToken[token]; ok {
		repl := fn(now)
		from := lineStart + tokStart
		return text[:from] + repl + text[pos:], from + len(repl), true
	}

	// Two-word command: the previous token names the command.
	head := strings.TrimRight(line[:tokStart], " \t")
	if head == "" {
		return text, pos, false
	}
	cmdStart := lastTokenStart(head)
	cmd := head[cmdStart:]

	args, ok := twoToken[cmd]
	if !ok {
		return text, pos, false
	}

	var repl string
	switch cmd {
	case "/tag":
		clean := sanitizeTag(token)
		if clean == "" {
			return text, pos, false
		}
		repl = "#" + clean
	default:
		if !args[token] {
			return text, pos, false
		}
		repl = strings.TrimPrefix(cmd, "/") + ": " + token
	}

	from := lineStart + cmdStart
	return text[:from] + repl + text[pos:], from + len(repl), true
}

// lastTokenStart returns the index just after the last space or tab in s.
func lastTokenStart(s string) int {
	if i := strings.LastIndexAny(s, " \t"); i >= 0 {
		return i + 1
	}
	return 0
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// sanitizeTag keeps letters, digits, underscore and hyphen.
func sanitizeTag(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}
