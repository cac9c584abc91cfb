package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todo/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// NoTasksMessage is the whole output of a listing with no matches.
	NoTasksMessage = "No tasks found."

	// DueLayout is how due dates are shown.
	DueLayout = "2006-01-02 15:04"

	markDone    = "✔"
	markPending = " "
)

// RenderOptions controls task line formatting.
type RenderOptions struct {
	// Color enables lipgloss styling.
	Color bool
	// Location is the zone due dates are shown in. Nil means time.Local.
	Location *time.Location
}

// RenderTasks writes one line per task, or NoTasksMessage when tasks is empty.
func RenderTasks(w io.Writer, tasks []models.Task, opts RenderOptions) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, NoTasksMessage)
		return err
	}
	for _, t := range tasks {
		if _, err := fmt.Fprintln(w, FormatTask(t, opts)); err != nil {
			return err
		}
	}
	return nil
}

// FormatTask renders a single task as
//
//	[✔] 3: text (High) [a, b] due 2025-01-02 15:04
//
// omitting the priority, tags and due parts when absent.
func FormatTask(t models.Task, opts RenderOptions) string {
	style := func(s lipgloss.Style, text string) string {
		if !opts.Color {
			return text
		}
		return s.Render(text)
	}

	marker := markPending
	textStyle := StyleText
	if t.Done {
		marker = style(StyleSuccess, markDone)
		textStyle = StyleDoneText
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] %s %s", marker, style(StyleSubtle, fmt.Sprintf("%d:", t.ID)), style(textStyle, t.Text)))

	if t.Priority != models.PriorityNone {
		sb.WriteString(" " + style(priorityStyle(t.Priority), "("+PriorityLabel(t.Priority)+")"))
	}
	if len(t.Tags) > 0 {
		sb.WriteString(" " + style(StyleTags, "["+strings.Join(t.Tags, ", ")+"]"))
	}
	if t.DueDate != nil {
		loc := opts.Location
		if loc == nil {
			loc = time.Local
		}
		sb.WriteString(" " + style(StyleDue, "due "+t.DueDate.In(loc).Format(DueLayout)))
	}
	return sb.String()
}

// PriorityLabel returns the display form of p, e.g. "High".
func PriorityLabel(p models.Priority) string {
	return cases.Title(language.English).String(string(p))
}

func priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityHigh:
		return StylePriorityHigh
	case models.PriorityMedium:
		return StylePriorityMedium
	case models.PriorityLow:
		return StylePriorityLow
	default:
		return StyleText
	}
}
