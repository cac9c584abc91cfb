package cmd

import (
	"github.com/spf13/cobra"
)

// toggleCmd represents the toggle command
var toggleCmd = &cobra.Command{
	Use:   "toggle [task_id]",
	Short: "Flip a task between done and not done",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		id, err := resolveTaskID(args, m.List(), "Select task to toggle")
		if err != nil {
			return err
		}

		task, err := m.Toggle(id)
		if err != nil {
			return err
		}
		verb := "Reopened"
		if task.Done {
			verb = "Completed"
		}
		return printTaskResult(cmd, verb, task)
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}
