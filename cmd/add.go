/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"strings"

	"github.com/josephgoksu/todo/models"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a new task",
	Long: `Add a new task to the list.

The due date is a local date and time. Times skipped or repeated by a
daylight-saving change are rejected.

Examples:
  todo add "buy milk"
  todo add "file taxes" --priority high --tag money --tag home
  todo add "dentist" --due "2025-06-01 09:30"`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return &ArgumentError{Msg: "missing task text"}
		}
		return nil
	},
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringP("priority", "p", "", "priority: high, medium or low")
	addCmd.Flags().StringArrayP("tag", "t", nil, "tag to attach (repeatable)")
	addCmd.Flags().String("due", "", `due date, e.g. "2025-06-01 18:00" or 2025-06-01`)
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return &ArgumentError{Msg: "task text cannot be empty"}
	}

	priority := models.PriorityNone
	if p, err := parsePriorityFlag(cmd, "priority"); err != nil {
		return err
	} else if p != nil {
		priority = *p
	}

	tags, err := cmd.Flags().GetStringArray("tag")
	if err != nil {
		return err
	}

	due, err := parseCivilFlag(cmd, "due")
	if err != nil {
		return err
	}

	m, err := openManager()
	if err != nil {
		return err
	}
	task, err := m.Add(text, priority, tags, due)
	if err != nil {
		return err
	}
	return printTaskResult(cmd, "Added", task)
}
