package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/josephgoksu/todo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand(t *testing.T) {
	dataFile := newTestDataFile(t, "todos.json")

	out := mustRunCLI(t, dataFile, "add", "buy", "milk", "-p", "H", "-t", "errands", "-t", "home")
	assert.Equal(t, "✓ Added task 1\n  [ ] 1: buy milk (High) [errands, home]\n", out)

	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	var doc models.TaskList
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.Tasks, 1)
	assert.Equal(t, models.PriorityHigh, doc.Tasks[0].Priority)
	assert.Equal(t, []string{"errands", "home"}, doc.Tasks[0].Tags)
	assert.Nil(t, doc.Tasks[0].DueDate)
}

func TestAddCommand_DueUsesTimezone(t *testing.T) {
	dataFile := newTestDataFile(t, "todos.json")
	t.Setenv("TODO_DISPLAY_TIMEZONE", "America/New_York")

	out := mustRunCLI(t, dataFile, "add", "dentist", "--due", "2025-07-01 09:30", "--json")

	var task models.Task
	require.NoError(t, json.Unmarshal([]byte(out), &task))
	require.NotNil(t, task.DueDate)
	assert.True(t, task.DueDate.Equal(time.Date(2025, 7, 1, 13, 30, 0, 0, time.UTC)))
}

func TestAddCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "no text", args: []string{"add"}, wantErr: "missing task text"},
		{name: "blank text", args: []string{"add", "   "}, wantErr: "task text cannot be empty"},
		{name: "bad priority", args: []string{"add", "x", "--priority", "urgent"}, wantErr: "invalid --priority"},
		{name: "bad due", args: []string{"add", "x", "--due", "tomorrow"}, wantErr: "invalid --due"},
		{name: "nonexistent local time", args: []string{"add", "x", "--due", "2025-03-09 02:30"}, wantErr: "does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataFile := newTestDataFile(t, "todos.json")
			t.Setenv("TODO_DISPLAY_TIMEZONE", "America/New_York")

			res := runCLI(t, dataFile, tt.args...)
			require.Error(t, res.Err)
			assert.Contains(t, res.Stderr, tt.wantErr)

			_, err := os.Stat(dataFile)
			assert.True(t, os.IsNotExist(err), "data file must not be created on error")
		})
	}
}

func TestAddCommand_YAMLFile(t *testing.T) {
	dataFile := newTestDataFile(t, "todos.yaml")

	mustRunCLI(t, dataFile, "add", "one")
	mustRunCLI(t, dataFile, "add", "two", "--tag", "x")

	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "tasks:")
	assert.Contains(t, string(raw), "text: two")

	out := mustRunCLI(t, dataFile, "list")
	assert.Equal(t, "[ ] 1: one\n[ ] 2: two [x]\n", out)
}

func TestAddCommand_CreatesParentDirectory(t *testing.T) {
	dataFile := filepath.Join(newTestDataFile(t, "unused"), "..", "nested", "dir", "todos.toml")

	mustRunCLI(t, dataFile, "add", "deep")

	_, err := os.Stat(dataFile)
	assert.NoError(t, err)
}
