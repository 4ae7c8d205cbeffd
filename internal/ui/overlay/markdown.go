package overlay

import "github.com/charmbracelet/glamour"

// renderMarkdown renders task notes for display. On renderer errors the
// raw markdown is returned so the text is never lost.
func renderMarkdown(md string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
