// elabsync bulk-imports team and teamgroup memberships into eLabFTW.
package main

import "github.com/elabtools/elabsync/cmd"

func main() {
	cmd.Execute()
}
