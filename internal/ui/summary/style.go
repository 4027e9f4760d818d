package summary

import (
	"io"
	"os"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Options configures summary rendering.
type Options struct {
	NoColor bool
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// ResolveNoColor decides whether output to w should be plain text.
// Colors are disabled by flag, by NO_COLOR, or when w is not a terminal.
func ResolveNoColor(flag bool, w io.Writer) bool {
	if flag {
		return true
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	return !isTerminal(w)
}

func defaultIsTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

// tableStyles returns table styles; the cursor row is never highlighted
// because summaries are static.
func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	styles.Selected = lipgloss.NewStyle()
	if noColor {
		styles.Header = lipgloss.NewStyle().Bold(false).Padding(0, 1)
		return styles
	}
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}

// deltaColor picks green for gains and red for losses.
func deltaColor(delta float64) lipgloss.Color {
	switch {
	case delta > 0:
		return lipgloss.Color("42")
	case delta < 0:
		return lipgloss.Color("196")
	default:
		return lipgloss.Color("244")
	}
}
