package commands

import (
	"fmt"

	"kat/internal/config"
	"kat/internal/export"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ExportCommand handles the export command
type ExportCommand struct {
	config *config.Config
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{config: cfg}
}

// Execute runs the command
func (ec *ExportCommand) Execute(cmd *cobra.Command, args []string) error {
	lb, err := config.LoadLeaderboards(ec.config.GetLeaderboardsPath())
	if err != nil {
		return err
	}

	exporters := export.All(lb)
	if game := ec.config.Flags.Game; game != "" {
		var match []export.Exporter
		for _, e := range exporters {
			if e.Game() == game {
				match = append(match, e)
			}
		}
		if len(match) == 0 {
			return fmt.Errorf("unknown game: %s", game)
		}
		exporters = match
	}

	color.Cyan("Saving all CSVs to: %s", lb.OutputDir)

	// One game failing does not stop the others.
	var ran, failed int
	for _, e := range exporters {
		if !e.Enabled() {
			color.Yellow("[%s] not configured, skipping", e.Game())
			continue
		}
		ran++
		if err := e.Export(cmd.Context(), lb.OutputDir); err != nil {
			color.Red("[%s] export failed: %v", e.Game(), err)
			failed++
		}
	}

	if ran == 0 {
		color.Yellow("No leaderboards configured for export")
		return nil
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d export(s) failed", failed, ran)
	}
	color.Green("All leaderboards exported successfully")
	return nil
}
