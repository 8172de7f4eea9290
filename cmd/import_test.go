package cmd

import (
	"strings"
	"testing"
)

func TestImportCommand_Flags(t *testing.T) {
	columnFlag := importCmd.Flags().Lookup("column-map")
	if columnFlag == nil {
		t.Error("import command should have --column-map flag")
	}

	insecureFlag := importCmd.Flags().Lookup("insecure")
	if insecureFlag == nil {
		t.Error("import command should have --insecure flag")
	}

	yesFlag := importCmd.Flags().Lookup("yes")
	if yesFlag == nil {
		t.Fatal("import command should have --yes flag")
	}
	if yesFlag.Shorthand != "y" {
		t.Errorf("import --yes flag shorthand = %q, want %q", yesFlag.Shorthand, "y")
	}
}

func TestImportCommand_HelpText(t *testing.T) {
	if !strings.Contains(importCmd.Long, "--column-map") {
		t.Error("import command Long description should mention --column-map")
	}
	if !strings.Contains(importCmd.Long, "Gruppe") {
		t.Error("import command Long description should list the default headers")
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	for _, want := range []string{"import", "snapshot"} {
		if !names[want] {
			t.Errorf("root command is missing %q subcommand", want)
		}
	}
}

func TestRootCommand_DebugFlag(t *testing.T) {
	debugFlag := rootCmd.PersistentFlags().Lookup("debug")
	if debugFlag == nil {
		t.Fatal("root command should have --debug persistent flag")
	}
	if debugFlag.Shorthand != "d" {
		t.Errorf("root --debug flag shorthand = %q, want %q", debugFlag.Shorthand, "d")
	}
}
