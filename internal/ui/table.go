package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todo/models"
)

// Table renders rows in a compact aligned layout with a header rule.
type Table struct {
	Headers  []string
	Rows     [][]string
	MaxWidth int // Max width per column (0 = unlimited)
	Color    bool
}

// ColumnWidths calculates column widths from headers and content.
func (t *Table) ColumnWidths() []int {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}
	if t.MaxWidth > 0 {
		for i := range widths {
			widths[i] = min(widths[i], t.MaxWidth)
		}
	}
	return widths
}

// Render outputs the table to a string.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := t.ColumnWidths()
	paint := func(s lipgloss.Style, text string) string {
		if !t.Color {
			return text
		}
		return s.Render(text)
	}
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)

	var sb strings.Builder
	cells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		cells[i] = paint(headerStyle, padRight(h, widths[i]))
	}
	sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	sb.WriteString(paint(StyleSubtle, strings.Join(rule, "──")) + "\n")

	for _, row := range t.Rows {
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = Truncate(row[i], widths[i])
			}
			cells[i] = padRight(val, widths[i])
		}
		sb.WriteString(strings.TrimRight(strings.Join(cells, "  "), " ") + "\n")
	}
	return sb.String()
}

// RenderTaskTable writes tasks as a table, or NoTasksMessage when empty.
func RenderTaskTable(w io.Writer, tasks []models.Task, opts RenderOptions) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, NoTasksMessage)
		return err
	}

	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	table := &Table{
		Headers:  []string{"ID", "DONE", "PRIORITY", "DUE", "TAGS", "TEXT"},
		MaxWidth: 48,
		Color:    opts.Color,
	}
	for _, t := range tasks {
		done := ""
		if t.Done {
			done = markDone
		}
		due := ""
		if t.DueDate != nil {
			due = t.DueDate.In(loc).Format(DueLayout)
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(t.ID),
			done,
			PriorityLabel(t.Priority),
			due,
			strings.Join(t.Tags, ","),
			t.Text,
		})
	}
	_, err := io.WriteString(w, table.Render())
	return err
}

// Truncate shortens s to at most maxLen columns, ending in an ellipsis.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || lipgloss.Width(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	if maxLen == 1 {
		return "…"
	}
	for lipgloss.Width(string(runes)) > maxLen-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
