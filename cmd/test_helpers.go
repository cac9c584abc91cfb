package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	_ "time/tzdata"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// cliResult holds the captured streams of one command run.
type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// newTestDataFile isolates HOME and returns a data file path in a temp dir.
func newTestDataFile(t *testing.T, name string) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	for _, key := range []string{"TODO_DATA_FILE", "TODO_DATA_FORMAT", "TODO_DISPLAY_COLOR", "TODO_DISPLAY_TIMEZONE", "TODO_VERBOSE", "TODO_JSON"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return filepath.Join(t.TempDir(), name)
}

// runCLI executes the root command against dataFile with a clean flag and
// config state.
func runCLI(t *testing.T, dataFile string, args ...string) cliResult {
	t.Helper()
	return runCLIWithoutFile(t, append([]string{"--file", dataFile}, args...)...)
}

// runCLIWithoutFile leaves data file resolution to config and environment.
func runCLIWithoutFile(t *testing.T, args ...string) cliResult {
	t.Helper()

	resetCommandState(rootCmd)
	viper.Reset()
	cfgFile = ""

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	rootCmd.SetArgs(append([]string{"--color", "never"}, args...))
	err := rootCmd.Execute()
	if err != nil {
		PrintError(&stderr, err)
	}
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// mustRunCLI is runCLI that fails the test on error.
func mustRunCLI(t *testing.T, dataFile string, args ...string) string {
	t.Helper()
	res := runCLI(t, dataFile, args...)
	require.NoError(t, res.Err, "stderr: %s", res.Stderr)
	return res.Stdout
}

// resetCommandState restores every flag of cmd and its children to its
// default, since cobra keeps flag values between Execute calls.
func resetCommandState(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetCommandState(c)
	}
}
