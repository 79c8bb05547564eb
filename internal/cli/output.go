package cli

import (
	"fmt"
	"html"
	"io"

	"github.com/fatih/color"

	"github.com/hukuksozluk/vurgu/internal/highlight"
	"github.com/hukuksozluk/vurgu/internal/session"
)

// PrintTerminal writes the highlighted text, the definitions panel and the
// explanation, if any, with ANSI colors.
func PrintTerminal(w io.Writer, state *session.State) error {
	bold := color.New(color.Bold)

	if _, err := bold.Fprintln(w, "Metin"); err != nil {
		return fmt.Errorf("bold.Fprintln > %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", highlight.Terminal(state.Segments)); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}

	if _, err := bold.Fprintln(w, "Terimler"); err != nil {
		return fmt.Errorf("bold.Fprintln > %w", err)
	}
	panel := state.Panel()
	if len(panel) == 0 {
		if _, err := fmt.Fprintln(w, "  Tanımı bulunan terim yok."); err != nil {
			return fmt.Errorf("fmt.Fprintln > %w", err)
		}
	}
	for _, entry := range panel {
		if _, err := fmt.Fprintf(w, "  %s: %s\n", highlight.Colorize(entry.Color, entry.Term), entry.Definition); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}

	if state.Explanation == "" {
		return nil
	}
	if _, err := bold.Fprintln(w, "\nAçıklama"); err != nil {
		return fmt.Errorf("bold.Fprintln > %w", err)
	}
	if _, err := fmt.Fprintln(w, state.Explanation); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	return nil
}

// PrintHTML writes an HTML fragment with the highlighted text and the panel.
func PrintHTML(w io.Writer, state *session.State) error {
	if _, err := fmt.Fprintf(w, "<p class='highlighted'>%s</p>\n<ul class='definitions'>\n", state.Rendered); err != nil {
		return fmt.Errorf("fmt.Fprintf > %w", err)
	}
	for _, entry := range state.Panel() {
		if _, err := fmt.Fprintf(w,
			"<li><span class='highlight-box' style='background-color: %s; color: %s;'>%s</span>: %s</li>\n",
			entry.Color.Background, entry.Color.Foreground,
			html.EscapeString(entry.Term), html.EscapeString(entry.Definition),
		); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	if _, err := fmt.Fprintln(w, "</ul>"); err != nil {
		return fmt.Errorf("fmt.Fprintln > %w", err)
	}
	if state.Explanation != "" {
		if _, err := fmt.Fprintf(w, "<p class='explanation'>%s</p>\n", html.EscapeString(state.Explanation)); err != nil {
			return fmt.Errorf("fmt.Fprintf > %w", err)
		}
	}
	return nil
}
