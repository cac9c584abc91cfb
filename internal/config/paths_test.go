package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func withGlobalDir(t *testing.T, dir string, err error) {
	t.Helper()
	orig := GetGlobalConfigDir
	GetGlobalConfigDir = func() (string, error) { return dir, err }
	t.Cleanup(func() { GetGlobalConfigDir = orig })
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestGetDataFilePath_ExplicitConfigWins(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("data.file", "/tmp/custom.yaml")
	t.Setenv("XDG_DATA_HOME", "/xdg")

	if got := GetDataFilePath(); got != "/tmp/custom.yaml" {
		t.Errorf("GetDataFilePath() = %q, want %q", got, "/tmp/custom.yaml")
	}
}

func TestGetDataFilePath_LocalProjectDir(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	tmp := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmp, AppDirName), 0o755); err != nil {
		t.Fatal(err)
	}
	chdir(t, tmp)
	t.Setenv("XDG_DATA_HOME", "/xdg")

	want := filepath.Join(AppDirName, DataFileName)
	if got := GetDataFilePath(); got != want {
		t.Errorf("GetDataFilePath() = %q, want %q", got, want)
	}
}

func TestGetDataFilePath_XDG(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("XDG_DATA_HOME", "/xdg")

	want := filepath.Join("/xdg", "todo", DataFileName)
	if got := GetDataFilePath(); got != want {
		t.Errorf("GetDataFilePath() = %q, want %q", got, want)
	}
}

func TestGetDataFilePath_GlobalFallback(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	withGlobalDir(t, "/home/someone/.todo", nil)

	want := filepath.Join("/home/someone/.todo", DataFileName)
	if got := GetDataFilePath(); got != want {
		t.Errorf("GetDataFilePath() = %q, want %q", got, want)
	}
}

func TestGetDataFilePath_NoHome(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")
	withGlobalDir(t, "", errors.New("no home"))

	if got := GetDataFilePath(); got != DataFileName {
		t.Errorf("GetDataFilePath() = %q, want %q", got, DataFileName)
	}
}

func TestGetDataFormat(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	if got := GetDataFormat(); got != "" {
		t.Errorf("expected empty format by default, got %q", got)
	}
	viper.Set("data.format", "toml")
	if got := GetDataFormat(); got != "toml" {
		t.Errorf("GetDataFormat() = %q, want toml", got)
	}
}
