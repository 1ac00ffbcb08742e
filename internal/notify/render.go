package notify

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10b981")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")).
			Bold(true)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)

func icon(k Kind) string {
	switch k {
	case KindSuccess:
		return "✓"
	case KindError:
		return "✗"
	default:
		return "…"
	}
}

// Render formats a toast as one styled terminal line.
func Render(t Toast) string {
	line := icon(t.Kind) + " " + t.Message
	switch t.Kind {
	case KindSuccess:
		return successStyle.Render(line)
	case KindError:
		return errorStyle.Render(line)
	default:
		return loadingStyle.Render(line)
	}
}

// WriterSink prints success and error toasts to w. Loading toasts are skipped.
func WriterSink(w io.Writer) func(Toast) {
	return func(t Toast) {
		if t.Kind == KindLoading {
			return
		}
		fmt.Fprintln(w, Render(t))
	}
}
