/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/josephgoksu/todo/internal/config"
	"github.com/josephgoksu/todo/internal/logger"
	"github.com/josephgoksu/todo/internal/todo"
	"github.com/josephgoksu/todo/internal/ui"
	"github.com/josephgoksu/todo/store"
	"github.com/spf13/cobra"
)

// version is the application version.
var version = "1.0.0"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "todo keeps a personal task list in a local file.",
	Long: `todo is a small command-line task list.

Tasks can carry a priority, tags and a due date. The whole list lives in a
single JSON, YAML or TOML file that is rewritten after every change.

Examples:
  todo add "buy milk" --priority high --tag errands --due "2025-06-01 18:00"
  todo list --tag errands --due-before 2025-06-02
  todo done 1
  todo toggle 1
  todo remove 1`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Any command error is printed to stderr and the process exits with status 1.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError(rootCmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

// preRun loads configuration and sets up logging before any subcommand runs.
func preRun(cmd *cobra.Command, args []string) error {
	if err := InitConfig(); err != nil {
		return err
	}
	logger.Setup(cmd.ErrOrStderr(), isVerbose())
	logger.SetVersion(version)
	logger.SetCommand(cmd.CommandPath(), args)
	logger.SetBasePath(filepath.Dir(config.GetDataFilePath()))
	return nil
}

func init() {
	// Assigned here rather than in the literal: InitConfig reads rootCmd's flags.
	rootCmd.PersistentPreRunE = preRun

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.todo.yaml or $HOME/.todo.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringP("file", "f", "", "task data file (default ./.todo/todos.json, $XDG_DATA_HOME/todo/todos.json or ~/.todo/todos.json)")
	rootCmd.PersistentFlags().String("format", "", "data file format: json, yaml or toml (default from file extension)")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output: auto, always or never")
	rootCmd.PersistentFlags().Bool("json", false, "print machine-readable JSON")
}

// openManager loads the task collection from the configured data file.
func openManager() (*todo.Manager, error) {
	s, err := openStore()
	if err != nil {
		return nil, err
	}
	loc, err := resolveLocation()
	if err != nil {
		return nil, err
	}
	m, err := todo.Open(s, todo.WithLocation(loc))
	if err != nil {
		return nil, err
	}
	return m, nil
}

func openStore() (*store.FileTaskStore, error) {
	path := config.GetDataFilePath()
	s, err := store.NewOsFileTaskStore(path, config.GetDataFormat())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", path, err)
	}
	return s, nil
}

// resolveLocation returns the zone from display.timezone, or time.Local.
func resolveLocation() (*time.Location, error) {
	name := GetConfig().Display.Timezone
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, &ArgumentError{Msg: fmt.Sprintf("unknown timezone %q", name), Err: err}
	}
	return loc, nil
}

func renderOptions() ui.RenderOptions {
	loc, err := resolveLocation()
	if err != nil {
		loc = time.Local
	}
	return ui.RenderOptions{Color: colorEnabled(), Location: loc}
}
