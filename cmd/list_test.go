package cmd

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/josephgoksu/todo/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedListData(t *testing.T) string {
	t.Helper()

	dataFile := newTestDataFile(t, "todos.json")
	t.Setenv("TODO_DISPLAY_TIMEZONE", "UTC")
	mustRunCLI(t, dataFile, "add", "plain")
	mustRunCLI(t, dataFile, "add", "urgent work", "-p", "high", "-t", "work", "--due", "2025-05-01 09:00")
	mustRunCLI(t, dataFile, "add", "urgent home", "-p", "high", "-t", "home", "--due", "2025-05-03 09:00")
	mustRunCLI(t, dataFile, "add", "slow work", "-p", "low", "-t", "work")
	return dataFile
}

func TestListCommand_Empty(t *testing.T) {
	dataFile := newTestDataFile(t, "todos.json")

	assert.Equal(t, "No tasks found.\n", mustRunCLI(t, dataFile, "list"))
	_, err := os.Stat(dataFile)
	assert.True(t, os.IsNotExist(err), "listing must not create the data file")
}

func TestListCommand_Filters(t *testing.T) {
	dataFile := seedListData(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "all",
			args: nil,
			want: "[ ] 1: plain\n" +
				"[ ] 2: urgent work (High) [work] due 2025-05-01 09:00\n" +
				"[ ] 3: urgent home (High) [home] due 2025-05-03 09:00\n" +
				"[ ] 4: slow work (Low) [work]\n",
		},
		{
			name: "priority",
			args: []string{"--priority", "high"},
			want: "[ ] 2: urgent work (High) [work] due 2025-05-01 09:00\n" +
				"[ ] 3: urgent home (High) [home] due 2025-05-03 09:00\n",
		},
		{
			name: "priority and tag",
			args: []string{"--priority", "high", "--tag", "work"},
			want: "[ ] 2: urgent work (High) [work] due 2025-05-01 09:00\n",
		},
		{
			name: "due before is inclusive",
			args: []string{"--due-before", "2025-05-01 09:00"},
			want: "[ ] 2: urgent work (High) [work] due 2025-05-01 09:00\n",
		},
		{
			name: "no match",
			args: []string{"--priority", "medium"},
			want: "No tasks found.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := mustRunCLI(t, dataFile, append([]string{"list"}, tt.args...)...)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestListCommand_JSON(t *testing.T) {
	dataFile := seedListData(t)

	out := mustRunCLI(t, dataFile, "list", "--tag", "work", "--json")

	var tasks []models.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, 2, tasks[0].ID)
	assert.Equal(t, 4, tasks[1].ID)
}

func TestListCommand_InvalidDueBefore(t *testing.T) {
	dataFile := seedListData(t)
	t.Setenv("TODO_DISPLAY_TIMEZONE", "America/New_York")

	res := runCLI(t, dataFile, "list", "--due-before", "2025-03-09 02:30")
	require.Error(t, res.Err)
	assert.Contains(t, res.Stderr, "does not exist")
	assert.Empty(t, res.Stdout)
}

func TestListCommand_CorruptFile(t *testing.T) {
	dataFile := newTestDataFile(t, "todos.json")
	require.NoError(t, os.WriteFile(dataFile, []byte("{not json"), 0o644))

	res := runCLI(t, dataFile, "list")
	require.Error(t, res.Err)
	assert.Contains(t, res.Stderr, "is not a valid json task file")

	raw, err := os.ReadFile(dataFile)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(raw), "corrupt file must be left untouched")
}

func TestListCommand_Table(t *testing.T) {
	dataFile := seedListData(t)

	out := mustRunCLI(t, dataFile, "list", "--table", "--priority", "low")
	assert.Equal(t, "ID  DONE  PRIORITY  DUE  TAGS  TEXT\n"+
		"────────────────────────────────────────\n"+
		"4         Low            work  slow work\n", out)
}
