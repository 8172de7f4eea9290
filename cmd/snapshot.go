package cmd

import (
	"github.com/spf13/cobra"

	"github.com/elabtools/elabsync/internal/elabsync/snapshot"
	"github.com/elabtools/elabsync/internal/log"
)

var snapshotInsecure bool

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show the current users, teams and teamgroups on the server",
	Long: `Fetch the server state an import run would resolve against and print
it for verification: overall counts, every team, and every teamgroup
with its member count.

Useful before an import to check that team and group names in the
spreadsheet match the server, and afterwards to eyeball the result.`,
	Example: `  # Print the server state
  elabsync snapshot

  # Server running on a self-signed certificate
  elabsync snapshot --insecure`,
	Run: func(_ *cobra.Command, _ []string) {
		api, err := initClient(snapshotInsecure)
		if err != nil {
			log.Fatal("Failed to initialize: %v", err)
		}

		snap, err := snapshot.Load(api)
		if err != nil {
			log.Fatal(err)
		}

		users, teams, groups := snap.Counts()
		log.Info("%s: %d users, %d teams, %d teamgroups", api.Url, users, teams, groups)
		for _, team := range snap.Teams() {
			log.InfoH2("%s (id %d)", team.Name, team.ID)
			for _, group := range snap.Teamgroups(team.Name) {
				log.InfoH3("%s (id %d, %d members)", group.Name, group.ID, len(group.Users))
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().BoolVar(&snapshotInsecure, "insecure", false, "Skip TLS certificate verification")
}
