package cmd

import (
	"github.com/josephgoksu/todo/models"
	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:     "done [task_id]",
	Aliases: []string{"finish", "complete", "d"},
	Short:   "Mark a task as done",
	Long:    `Mark a task as completed. Without a task_id an interactive list of open tasks is shown.`,
	Example: `  # Complete a specific task
  todo done 3

  # Interactive mode
  todo done`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}

		var open []models.Task
		for _, t := range m.List() {
			if !t.Done {
				open = append(open, t)
			}
		}
		id, err := resolveTaskID(args, open, "Select task to mark as done")
		if err != nil {
			return err
		}

		current, err := m.Get(id)
		if err != nil {
			return err
		}
		if current.Done {
			// Nothing changes, so the file is not rewritten.
			return printTaskResult(cmd, "Already completed", current)
		}

		task, err := m.MarkDone(id)
		if err != nil {
			return err
		}
		return printTaskResult(cmd, "Completed", task)
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
