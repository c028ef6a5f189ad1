package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/performance-index/internal/validation"
)

// execute runs rootCmd with fresh flag state and captured streams.
func execute(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	cfgFile = ""
	verbose = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_Session(t *testing.T) {
	stdout, stderr, err := execute(t, "2\n3 4\n8 9\n3\n8.0 7.5 9.0\n", "--config", "")
	require.NoError(t, err)

	assert.Contains(t, stdout, "SPI: 8.57\n")
	assert.Contains(t, stdout, "CPI: 8.17\n")
	assert.Empty(t, stderr)
	assert.Equal(t, ExitOK, exitCode(err))
}

func TestRoot_RejectedInputExitCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"zero courses", "0\n", "Enter the correct number of courses"},
		{"zero credits", "1\n0\n7\n", "Please provide the credits of each subject"},
		{"zero semesters", "1\n3\n8\n0\n", "Enter the correct number of semesters"},
		{"malformed", "x\n", "Invalid value for number of courses"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.input, "--config", "")
			require.Error(t, err)

			assert.Contains(t, stdout, tt.message)
			assert.Equal(t, ExitRejected, exitCode(err))
		})
	}
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr, err := execute(t, "0\n", "--config", "", "-v")
	require.Error(t, err)

	assert.NotContains(t, stdout, "session=")
	assert.Contains(t, stderr, "session started")
	assert.Contains(t, stderr, "kind=zero_courses")
}

func TestRoot_LogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "spicalc.log")
	cfgPath := filepath.Join(dir, "spicalc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(fmt.Sprintf("log_level: info\nlog_format: json\nlog_file: %s\n", logPath)), 0644))

	_, stderr, err := execute(t, "1 4 9 1 9", "--config", cfgPath)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"session completed"`)
}

func TestRoot_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log_level: shouting\n"), 0644))

	_, _, err := execute(t, "", "--config", cfgPath)
	require.Error(t, err)

	assert.False(t, validation.IsValidationError(err))
	assert.Equal(t, ExitFailure, exitCode(err))
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "", "--config", "", "extra")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitOK, exitCode(nil))
	assert.Equal(t, ExitRejected, exitCode(fmt.Errorf("wrapped: %w", validation.New(validation.KindZeroCourses, "", "x"))))
	assert.Equal(t, ExitFailure, exitCode(errors.New("boom")))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Performance Index Calculator")
	assert.Contains(t, stdout, "Version:    "+Version)
}

func TestConfigCommand(t *testing.T) {
	stdout, _, err := execute(t, "", "config", "--config", "")
	require.NoError(t, err)

	assert.Contains(t, stdout, "log_level: warn")
	assert.Contains(t, stdout, "log_format: text")
	assert.Contains(t, stdout, "decimal_places: 2")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "WARN", parseLevel("nonsense").String())
}

func TestReportClose(t *testing.T) {
	var stderr bytes.Buffer

	reportClose(func() error { return nil }, &stderr)
	assert.Empty(t, stderr.String())

	reportClose(func() error { return errors.New("disk full") }, &stderr)
	assert.Equal(t, "Error: failed to close log file: disk full\n", stderr.String())
}
