package commands

import (
	"fmt"

	"kat/internal/config"
	"kat/internal/fetch"
	"kat/internal/manifest"
	"kat/internal/pull"
	"kat/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// PullCommand handles the pull command
type PullCommand struct {
	config    *config.Config
	fetcher   *fetch.Fetcher
	puller    *pull.Puller
	formatter *ui.Formatter
}

// NewPullCommand creates a new PullCommand
func NewPullCommand(cfg *config.Config, fetcher *fetch.Fetcher, puller *pull.Puller, formatter *ui.Formatter) *PullCommand {
	return &PullCommand{
		config:    cfg,
		fetcher:   fetcher,
		puller:    puller,
		formatter: formatter,
	}
}

// Execute runs the command
func (pc *PullCommand) Execute(cmd *cobra.Command, args []string) error {
	manifestPath := pc.config.GetManifestPath(args)
	color.Cyan("Loading configuration from: %s", manifestPath)

	// A missing or malformed manifest is fatal; nothing is downloaded.
	downloads, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	if len(downloads) == 0 {
		color.Yellow("No downloads specified in configuration file")
		return nil
	}

	color.Cyan("Found %d file(s) to download", len(downloads))
	fmt.Println()

	pc.fetcher.SetProgress(!pc.config.Flags.Quiet)
	summary := pc.puller.Run(downloads)

	pc.formatter.PrintRunSummary(summary)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d download(s) failed", summary.Failed, summary.Total)
	}
	return nil
}
