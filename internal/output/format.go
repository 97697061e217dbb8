// Package output provides formatters for task list output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todolist/internal/todo"
)

const (
	// ListHeader is printed above the numbered list in the interactive session.
	ListHeader = "--- Your Tasks ---"

	// EmptyList is printed when there is nothing to show.
	EmptyList = "Your to-do list is empty."
)

// Styles holds the terminal styles for task output.
// The zero value prints plain text.
type Styles struct {
	enabled  bool
	header   lipgloss.Style
	done     lipgloss.Style
	errLabel lipgloss.Style
}

// NewStyles returns styles that render with lipgloss when color is true and
// as plain text otherwise.
func NewStyles(color bool) Styles {
	return Styles{
		enabled:  color,
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		errLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

func (s Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// FormatTask formats a numbered task line.
// Format: "{N:>4}  {RENDERED}\n" (4-wide right-aligned number, two spaces, "[ ] desc" or "[X] desc")
func (s Styles) FormatTask(w io.Writer, num int, task todo.Task) {
	line := normalizeDescription(task.String())
	if task.IsComplete() {
		line = s.render(s.done, line)
	}
	fmt.Fprintf(w, "%4d  %s\n", num, line)
}

// FormatList prints every task in list, or EmptyList if it has none.
func (s Styles) FormatList(w io.Writer, list *todo.List) {
	if list.IsEmpty() {
		fmt.Fprintln(w, EmptyList)
		return
	}
	for n, task := range list.All() {
		s.FormatTask(w, n, task)
	}
}

// FormatHeader prints a section header line.
func (s Styles) FormatHeader(w io.Writer, title string) {
	fmt.Fprintln(w, s.render(s.header, title))
}

// FormatError prints "error: msg" to w.
func (s Styles) FormatError(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s %s\n", s.render(s.errLabel, "error:"), msg)
}

// normalizeDescription replaces newlines so one task is always one line.
func normalizeDescription(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
