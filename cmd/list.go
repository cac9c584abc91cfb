/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/josephgoksu/todo/internal/todo"
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/store"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks in the order they were added.

All given filters must match. --due-before keeps tasks due at or before
the given local date-time; tasks without a due date are left out.

Examples:
  todo list
  todo list --priority high --tag work
  todo list --due-before "2025-06-01 18:00"
  todo list --table
  todo list --watch`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("priority", "p", "", "only tasks with this priority")
	listCmd.Flags().StringP("tag", "t", "", "only tasks carrying this exact tag")
	listCmd.Flags().String("due-before", "", "only tasks due at or before this local date-time")
	listCmd.Flags().Bool("table", false, "show tasks as an aligned table")
	listCmd.Flags().BoolP("watch", "w", false, "re-render whenever the data file changes")
}

func runList(cmd *cobra.Command, args []string) error {
	m, err := openManager()
	if err != nil {
		return err
	}
	filter, err := buildFilter(cmd, m)
	if err != nil {
		return err
	}

	if err := renderList(cmd, m, filter); err != nil {
		return err
	}

	watch, _ := cmd.Flags().GetBool("watch")
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openStore()
	if err != nil {
		return err
	}
	return store.Watch(ctx, s.Path(), func() error {
		m, err := openManager()
		if err != nil {
			PrintError(cmd.ErrOrStderr(), err)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return renderList(cmd, m, filter)
	})
}

func buildFilter(cmd *cobra.Command, m *todo.Manager) (todo.Filter, error) {
	var filter todo.Filter

	p, err := parsePriorityFlag(cmd, "priority")
	if err != nil {
		return filter, err
	}
	filter.Priority = p

	if cmd.Flags().Changed("tag") {
		tag, _ := cmd.Flags().GetString("tag")
		filter.Tag = &tag
	}

	civil, err := parseCivilFlag(cmd, "due-before")
	if err != nil {
		return filter, err
	}
	if civil != nil {
		at, err := m.ResolveFilterDue(*civil)
		if err != nil {
			return filter, err
		}
		filter.DueBefore = &at
	}
	return filter, nil
}

func renderList(cmd *cobra.Command, m *todo.Manager, filter todo.Filter) error {
	tasks := m.Select(filter)
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), tasks)
	}
	if table, _ := cmd.Flags().GetBool("table"); table {
		return ui.RenderTaskTable(cmd.OutOrStdout(), tasks, renderOptions())
	}
	return ui.RenderTasks(cmd.OutOrStdout(), tasks, renderOptions())
}
