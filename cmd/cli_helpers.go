package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/josephgoksu/todo/internal/todo"
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// parseTaskID converts a command argument into a positive task id.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, &ArgumentError{Msg: fmt.Sprintf("invalid task id %q: must be a positive integer", arg)}
	}
	return id, nil
}

// resolveTaskID returns the id given on the command line or, on an
// interactive terminal, lets the user pick one of candidates.
func resolveTaskID(args []string, candidates []models.Task, title string) (int, error) {
	if len(args) > 0 {
		return parseTaskID(args[0])
	}
	if isJSON() || !ui.IsInteractive() {
		return 0, &ArgumentError{Msg: "missing task id"}
	}
	if len(candidates) == 0 {
		return 0, &ArgumentError{Msg: "missing task id (no tasks to choose from)"}
	}
	return ui.PromptTaskSelection(title, candidates, renderOptions())
}

// parsePriorityFlag returns nil when the flag was not given.
func parsePriorityFlag(cmd *cobra.Command, name string) (*models.Priority, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	p, err := models.ParsePriority(raw)
	if err != nil {
		return nil, &ArgumentError{Msg: fmt.Sprintf("invalid --%s", name), Err: err}
	}
	return &p, nil
}

// parseCivilFlag returns nil when the flag was not given.
func parseCivilFlag(cmd *cobra.Command, name string) (*todo.CivilTime, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	c, err := todo.ParseCivilTime(raw)
	if err != nil {
		return nil, &ArgumentError{Msg: fmt.Sprintf("invalid --%s", name), Err: err}
	}
	return &c, nil
}

// printTaskResult prints a one-line confirmation, or the task as JSON.
func printTaskResult(cmd *cobra.Command, verb string, task models.Task) error {
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), task)
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "✓ %s task %d\n  %s\n", verb, task.ID, ui.FormatTask(task, renderOptions()))
	return err
}
