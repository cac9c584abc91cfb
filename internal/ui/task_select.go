package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todo/models"
)

// ErrSelectionCancelled is returned when the user quits the picker.
var ErrSelectionCancelled = errors.New("selection cancelled")

type taskSelectKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var taskSelectKeys = taskSelectKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("esc", "cancel")),
}

// PromptTaskSelection lets the user pick one of tasks and returns its id.
func PromptTaskSelection(title string, tasks []models.Task, opts RenderOptions) (int, error) {
	if len(tasks) == 0 {
		return 0, fmt.Errorf("no tasks to select from")
	}

	m := newTaskSelectModel(title, tasks, opts)
	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return 0, fmt.Errorf("error running task selection: %w", err)
	}

	result := finalModel.(taskSelectModel)
	if result.quit {
		return 0, ErrSelectionCancelled
	}
	return result.selectedID, nil
}

type taskSelectModel struct {
	title      string
	tasks      []models.Task
	opts       RenderOptions
	cursor     int
	selectedID int
	quit       bool
}

func newTaskSelectModel(title string, tasks []models.Task, opts RenderOptions) taskSelectModel {
	return taskSelectModel{title: title, tasks: tasks, opts: opts}
}

func (m taskSelectModel) Init() tea.Cmd {
	return nil
}

func (m taskSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, taskSelectKeys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(keyMsg, taskSelectKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, taskSelectKeys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, taskSelectKeys.Select):
		m.selectedID = m.tasks[m.cursor].ID
		return m, tea.Quit
	}
	return m, nil
}

func (m taskSelectModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n" + StyleSelectTitle.Render(m.title) + "\n\n")

	for i, t := range m.tasks {
		cursor := "  "
		line := FormatTask(t, m.opts)
		if m.cursor == i {
			cursor = "▶ "
			line = StyleSelectActive.Render(FormatTask(t, RenderOptions{Location: m.opts.Location}))
		}
		sb.WriteString(cursor + line + "\n")
	}

	help := []string{}
	for _, b := range []key.Binding{taskSelectKeys.Up, taskSelectKeys.Down, taskSelectKeys.Select, taskSelectKeys.Quit} {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	sb.WriteString("\n" + StyleSelectDim.Render(strings.Join(help, " • ")) + "\n")
	return sb.String()
}
