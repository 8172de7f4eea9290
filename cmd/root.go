// Package cmd provides command-line interface commands for elabsync
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/elabtools/elabsync/internal/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "elabsync",
	Short: "Bulk membership importer for eLabFTW",
	Long: `elabsync - command-line bulk importer for eLabFTW memberships

Reads a user directory spreadsheet (xlsx or CSV) and reconciles each row
against the server: every listed user is added to the named team and
teamgroup, skipping memberships that already exist.

The server endpoint is taken from the environment (or a local .env file):
  ELAB_API_HOST_URL   base URL of the eLabFTW instance
  ELAB_API_KEY        API key with sysadmin read/write permissions
  ELAB_VERIFY_TLS     set to false for self-signed certificates
  ELAB_DEBUG          set to true to dump API requests and responses`,
	Example: `  # Import memberships from a spreadsheet
  elabsync import userlist.xlsx

  # Import from a CSV with custom column headers
  elabsync import userlist.csv --column-map columns.yaml

  # Inspect the current server state
  elabsync snapshot`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		// Enable debug mode if flag is set
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			log.SetDebugMode(true)
			log.Debug("Debug mode enabled")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add debug flag to root command
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
}
