// =============================================================================
// Performance Index Calculator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Running the binary
// without a subcommand starts the interactive SPI/CPI session.
//
// COBRA CLI STRUCTURE:
//   rootCmd (spicalc)          - interactive session
//   ├── configCmd (spicalc config)
//   └── versionCmd (spicalc version)
//
// EXIT CODES:
//   0 - session completed
//   1 - operational failure (bad config file, broken stream)
//   2 - input rejected (zero courses, zero total credits, zero semesters,
//       malformed number)
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/performance-index/internal/config"
	"github.com/ginjaninja78/performance-index/internal/session"
	"github.com/ginjaninja78/performance-index/internal/validation"
)

// Exit codes returned by Execute.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitRejected = 2
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "spicalc",
	Short: "Performance index calculator - compute SPI and CPI interactively",
	Long: `spicalc computes a student's Semester Performance Index (SPI), the
credit-weighted average of course grades, and Cumulative Performance Index
(CPI), the mean of per-semester SPI values.

Values are typed at the prompts, separated by spaces or newlines.

Example Usage:
  spicalc                          # Start an interactive session
  spicalc --config ./spicalc.yaml  # Use a custom configuration file
  spicalc config                   # Show the effective configuration`,

	// The session prints its own messages; Execute maps errors to exit codes.
	SilenceUsage:  true,
	SilenceErrors: true,

	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runSession(cmd)
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command and exits with the matching status code.
// This is called by main.main().
func Execute() {
	err := rootCmd.Execute()
	if err != nil && !validation.IsValidationError(err) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to a process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case validation.IsValidationError(err):
		return ExitRejected
	default:
		return ExitFailure
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

// init sets up the global flags.
func init() {
	// --config flag: Path to the YAML configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		config.DefaultPath,
		"Path to the configuration file (ignored if the default file is absent)",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// =============================================================================
// SESSION
// =============================================================================

// runSession loads the configuration, sets up logging and runs one session
// over the command's input and output streams.
func runSession(cmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closeLog, err := setupLogger(cfg, verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer reportClose(closeLog, cmd.ErrOrStderr())

	s := session.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	_, err = s.Run(cmd.Context())
	return err
}

// setupLogger builds the slog logger described by cfg. Logs go to cfg.LogFile
// when set, otherwise to stderr.
//
// RETURNS:
//   - The logger.
//   - A function closing the log file (a no-op for stderr).
//   - An error if the log file cannot be opened.
func setupLogger(cfg *config.Config, verbose bool, stderr io.Writer) (*slog.Logger, func() error, error) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if verbose {
		opts.Level = slog.LevelDebug
	}

	var w io.Writer = stderr
	closeFn := func() error { return nil }

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler), closeFn, nil
}

// reportClose runs closeFn and writes any failure to stderr. The session
// outcome has already been decided by then, so a failed close does not
// change the exit status.
func reportClose(closeFn func() error, stderr io.Writer) {
	if err := closeFn(); err != nil {
		fmt.Fprintf(stderr, "Error: failed to close log file: %v\n", err)
	}
}

// parseLevel converts a configured level name to a slog.Level.
func parseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelWarn
	}
	return l
}
