package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// AppDirName is the per-user and per-project directory name.
	AppDirName = ".todo"
	// DataFileName is the default data file inside AppDirName.
	DataFileName = "todos.json"
)

// GetGlobalConfigDir returns the path to the global configuration directory (~/.todo).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, AppDirName), nil
}

// GetDataFilePath returns the path of the task data file.
// Resolution order (first match wins):
// 1. Explicit config via "data.file" (Viper/env/flag)
// 2. Local project directory: ./.todo/todos.json (if ./.todo exists)
// 3. XDG_DATA_HOME/todo/todos.json (if XDG_DATA_HOME is set)
// 4. Global fallback: ~/.todo/todos.json
func GetDataFilePath() string {
	if path := viper.GetString("data.file"); path != "" {
		return path
	}

	if info, err := os.Stat(AppDirName); err == nil && info.IsDir() {
		return filepath.Join(AppDirName, DataFileName)
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, "todo", DataFileName)
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return DataFileName
	}
	return filepath.Join(dir, DataFileName)
}

// GetDataFormat returns the configured data format, or "" to infer it from
// the data file extension.
func GetDataFormat() string {
	return viper.GetString("data.format")
}
