// =============================================================================
// Performance Index Calculator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the spicalc CLI. It delegates to the
// Cobra root command in the cmd package.
//
// USAGE:
//   spicalc           - Start an interactive SPI/CPI session
//   spicalc config    - Display the effective configuration
//   spicalc version   - Display the application version
//
// ARCHITECTURE:
//   - cmd/                 : CLI command definitions (Cobra)
//   - internal/collector   : Reads numbers from the input stream
//   - internal/index       : SPI and CPI formulas
//   - internal/session     : Drives one interactive session
//   - internal/validation  : Tagged error type shared by the above
//   - internal/config      : Optional YAML configuration
//   - internal/types       : Shared result types
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/performance-index/cmd"
)

func main() {
	cmd.Execute()
}
