// =============================================================================
// Performance Index Calculator - Config Command
// =============================================================================
//
// Prints the effective configuration (file values merged with defaults) as
// YAML. Useful for checking a configuration file before a session.
//
// COMMAND USAGE:
//   spicalc config [--config path]
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/performance-index/internal/config"
)

// configCmd represents the 'config' command.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long: `Load the configuration file, apply defaults, validate it, and print the
result as YAML. Exits non-zero if the file is invalid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		data, err := cfg.Marshal()
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
