// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tasktracker/internal/service"
)

// EmptyMessage is printed when a listing has no tasks.
const EmptyMessage = "No tasks available."

// Printer writes task lines to w. The status word is coloured when w is a
// terminal and left plain otherwise.
type Printer struct {
	w      io.Writer
	styles map[service.Status]lipgloss.Style
}

// NewPrinter creates a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w: w,
		styles: map[service.Status]lipgloss.Style{
			service.StatusTodo:       r.NewStyle().Foreground(lipgloss.Color("245")),
			service.StatusInProgress: r.NewStyle().Foreground(lipgloss.Color("214")),
			service.StatusDone:       r.NewStyle().Foreground(lipgloss.Color("42")),
		},
	}
}

// Task formats one task line.
// Format: "ID: {ID}, Task: {DESCRIPTION}, Status: {STATUS}\n"
func (p *Printer) Task(task service.Task) {
	fmt.Fprintf(p.w, "ID: %d, Task: %s, Status: %s\n", task.ID, normalizeDescription(task.Description), p.status(task.Status))
}

// Tasks formats every task, or EmptyMessage if there are none.
func (p *Printer) Tasks(tasks []service.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(p.w, EmptyMessage)
		return
	}
	for _, t := range tasks {
		p.Task(t)
	}
}

func (p *Printer) status(s service.Status) string {
	style, ok := p.styles[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}

// normalizeDescription keeps each task on one line.
// - Newlines are replaced with spaces
// - Empty or whitespace-only descriptions become "(untitled)"
func normalizeDescription(desc string) string {
	desc = strings.ReplaceAll(desc, "\r", " ")
	desc = strings.ReplaceAll(desc, "\n", " ")

	if strings.TrimSpace(desc) == "" {
		return "(untitled)"
	}
	return desc
}
