package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "genesis-cli",
	Short: "Genesis CLI - Operator tool for the Genesis archive",
	Long: `genesis-cli is the operator command-line interface for Genesis.

It runs archive maintenance jobs and manages session consent directly
against the configured database, reading the same environment variables
the server reads.

Examples:
  # Archive maintenance
  genesis-cli archive sweep
  genesis-cli archive synthesize
  genesis-cli archive stats --format json

  # Consent management
  genesis-cli consent show <session-id>
  genesis-cli consent set <session-id> --level collective --retention-days 90`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(consentCmd)
}
