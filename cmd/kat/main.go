package main

import (
	"fmt"
	"os"

	"kat/internal/cli"
	"kat/internal/cli/commands"
	"kat/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "kat",
		Short:         "KeitaiArchive data tools",
		Long:          `Utilities for maintaining KeitaiArchive data: pull remote data files from a JSON manifest, export game leaderboards to CSV, and generate resource-card HTML snippets.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
