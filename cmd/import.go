package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/elabtools/elabsync/internal/elabsync/directory"
	"github.com/elabtools/elabsync/internal/elabsync/importer"
	"github.com/elabtools/elabsync/internal/log"
)

var (
	importColumnMap string
	importInsecure  bool
	importYes       bool
)

var importCmd = &cobra.Command{
	Use:     "import <file-or-url>",
	Aliases: []string{"i"},
	Short:   "Import team and teamgroup memberships from a spreadsheet",
	Long: `Import team and teamgroup memberships from a user directory spreadsheet.

The spreadsheet needs one row per user with columns for first name, last
name, email, team and teamgroup. The built-in header mapping expects:
  Vorname, Nachname, E-Mail, Team, Gruppe

Use --column-map to supply a YAML file mapping your headers to the
canonical fields (firstname, lastname, email, team, teamgroup).

Rows whose user, team or teamgroup cannot be found on the server are
logged and skipped; the rest of the batch still runs. Users already in
the named team or teamgroup are left alone.`,
	Example: `  # Import from a local xlsx
  elabsync import userlist.xlsx

  # Import from a CSV served over HTTP
  elabsync import https://intranet.example.org/userlist.csv

  # Server running on a self-signed certificate
  elabsync import userlist.xlsx --insecure

  # Non-interactive use
  elabsync import userlist.xlsx --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		source := args[0]

		var columns directory.ColumnMap
		if importColumnMap != "" {
			var err error
			columns, err = directory.LoadColumnMap(importColumnMap)
			if err != nil {
				log.Fatal("Failed to load column map: %v", err)
			}
		}

		api, err := initClient(importInsecure)
		if err != nil {
			log.Fatal("Failed to initialize: %v", err)
		}

		if !importYes && !confirmImport(source, api.Url) {
			log.Info("Import aborted")
			return
		}

		if err := importer.New(api, columns).Process(source); err != nil {
			log.Fatal(err)
		}

		log.Info("Import finished!")
	},
}

func confirmImport(source, url string) bool {
	confirmed := false
	prompt := &survey.Confirm{
		Message: fmt.Sprintf("Import memberships from %s into %s?", source, url),
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		log.Error("Prompt failed: %v", err)
		return false
	}
	return confirmed
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&importColumnMap, "column-map", "", "YAML file mapping spreadsheet headers to canonical fields")
	importCmd.Flags().BoolVar(&importInsecure, "insecure", false, "Skip TLS certificate verification")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Skip the confirmation prompt")
}
