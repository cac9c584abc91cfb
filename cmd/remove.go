package cmd

import (
	"github.com/spf13/cobra"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:     "remove [task_id]",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a task",
	Long:    `Remove a task by its ID. Other tasks keep their IDs. Without a task_id an interactive list is shown.`,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openManager()
		if err != nil {
			return err
		}
		id, err := resolveTaskID(args, m.List(), "Select task to remove")
		if err != nil {
			return err
		}

		task, err := m.Remove(id)
		if err != nil {
			return err
		}
		return printTaskResult(cmd, "Removed", task)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
