package slash

import (
	"strings"
	"testing"
	"time"
)

var testNow = time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

func TestExpand_OneToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"now", "/now", "Fri, 14 Mar 2025 • 09:26"},
		{"today", "/today", "Fri, 14 Mar 2025"},
		{"yesterday", "/yesterday", "Thu, 13 Mar 2025"},
		{"tomorrow", "/tomorrow", "Sat, 15 Mar 2025"},
		{"log", "/log", "### Fri, 14 Mar 2025 • 09:26"},
		{"start", "/start", "Started: Fri, 14 Mar 2025 • 09:26"},
		{"done", "/done", "Completed: Fri, 14 Mar 2025 • 09:26"},
		{"review", "/review", "Review: Fri, 14 Mar 2025 • 09:26"},
		{"update", "/update", "Last updated: Fri, 14 Mar 2025 • 09:26"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pos, ok := Expand(tt.in, len(tt.in), testNow)
			if !ok {
				t.Fatalf("Expand(%q) ok = false, want true", tt.in)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if pos != len(tt.want) {
				t.Errorf("Expand(%q) pos = %d, want %d", tt.in, pos, len(tt.want))
			}
		})
	}
}

// /today must equal /now minus the time component.
func TestExpand_TodayMatchesNow(t *testing.T) {
	nowOut, _, _ := Expand("/now", 4, testNow)
	todayOut, _, _ := Expand("/today", 6, testNow)

	day, _, found := strings.Cut(nowOut, " • ")
	if !found {
		t.Fatalf("/now output %q has no time separator", nowOut)
	}
	if todayOut != day {
		t.Errorf("/today = %q, want date part of /now %q", todayOut, day)
	}
}

func TestExpand_TwoToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"priority high", "/priority high", "priority: high"},
		{"priority med", "/priority med", "priority: med"},
		{"priority low", "/priority low", "priority: low"},
		{"status todo", "/status todo", "status: todo"},
		{"status doing", "/status doing", "status: doing"},
		{"status done", "/status done", "status: done"},
		{"tag simple", "/tag kitchen", "#kitchen"},
		{"tag sanitized", "/tag a.b/c_d-e!", "#abc_d-e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pos, ok := Expand(tt.in, len(tt.in), testNow)
			if !ok {
				t.Fatalf("Expand(%q) ok = false, want true", tt.in)
			}
			if got != tt.want {
				t.Errorf("Expand(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if pos != len(tt.want) {
				t.Errorf("Expand(%q) pos = %d, want %d", tt.in, pos, len(tt.want))
			}
		})
	}
}

func TestExpand_Untouched(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"unknown command", "/foo"},
		{"plain word", "hello"},
		{"priority bad arg", "/priority urgent"},
		{"status bad arg", "/status blocked"},
		{"tag with nothing valid", "/tag !!!"},
		{"empty line", ""},
		{"trailing space", "/now "},
		{"slash alone", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, pos, ok := Expand(tt.in, len(tt.in), testNow)
			if ok {
				t.Fatalf("Expand(%q) ok = true, want false", tt.in)
			}
			if got != tt.in || pos != len(tt.in) {
				t.Errorf("Expand(%q) changed buffer to %q pos %d", tt.in, got, pos)
			}
		})
	}
}

func TestExpand_MidBuffer(t *testing.T) {
	// Cursor in the middle of a larger buffer; text after the cursor is kept.
	in := "notes before\nsee /today for details"
	pos := len("notes before\nsee /today")

	got, newPos, ok := Expand(in, pos, testNow)
	if !ok {
		t.Fatal("Expand() ok = false, want true")
	}

	want := "notes before\nsee Fri, 14 Mar 2025 for details"
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
	wantPos := len("notes before\nsee Fri, 14 Mar 2025")
	if newPos != wantPos {
		t.Errorf("Expand() pos = %d, want %d", newPos, wantPos)
	}
}

func TestExpand_OnlyLastToken(t *testing.T) {
	// Earlier words on the line do not interfere.
	in := "morning pages /log"
	got, _, ok := Expand(in, len(in), testNow)
	if !ok {
		t.Fatal("Expand() ok = false, want true")
	}
	want := "morning pages ### Fri, 14 Mar 2025 • 09:26"
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestExpand_CommandOnPreviousLineIgnored(t *testing.T) {
	in := "/now\nplain"
	got, _, ok := Expand(in, len(in), testNow)
	if ok {
		t.Errorf("Expand() ok = true, want false; got %q", got)
	}
}

func TestExpand_TwoTokenSpanReplaced(t *testing.T) {
	// Both words of a two-token command are consumed by the replacement.
	in := "cleanup /tag deep-clean"
	got, _, ok := Expand(in, len(in), testNow)
	if !ok {
		t.Fatal("Expand() ok = false, want true")
	}
	want := "cleanup #deep-clean"
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestExpand_OutOfRangePos(t *testing.T) {
	if _, _, ok := Expand("/now", 99, testNow); ok {
		t.Error("Expand() with pos past the buffer should not expand")
	}
	if _, _, ok := Expand("/now", -1, testNow); ok {
		t.Error("Expand() with negative pos should not expand")
	}
}

func TestExpand_NoTrailingWhitespace(t *testing.T) {
	for cmd := range oneToken {
		got, _, ok := Expand(cmd, len(cmd), testNow)
		if !ok {
			t.Fatalf("Expand(%q) ok = false", cmd)
		}
		if strings.TrimRight(got, " \t") != got {
			t.Errorf("Expand(%q) = %q has trailing whitespace", cmd, got)
		}
	}
}
