package commands

import (
	"kat/internal/card"
	"kat/internal/cli"
	"kat/internal/config"
	"kat/internal/fetch"
	"kat/internal/pull"
	"kat/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Pull   *PullCommand
	Export *ExportCommand
	Card   *CardCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	fetcher := fetch.NewFetcher(cfg.DownloadTimeout)
	puller := pull.NewPuller(fetcher)
	formatter := ui.NewFormatter()
	builder := card.NewBuilder()
	form := ui.NewCardForm(builder)

	return &Commands{
		Pull:   NewPullCommand(cfg, fetcher, puller, formatter),
		Export: NewExportCommand(cfg),
		Card:   NewCardCommand(cfg, builder, form),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// Pull command
	pullCmd := &cobra.Command{
		Use:   "pull [config]",
		Short: "Download files listed in a JSON manifest",
		Long:  "Read a JSON manifest and download each listed file to its destination path",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Pull.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	pullCmd.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "Disable per-download progress bars")
	rootCmd.AddCommand(pullCmd)

	// Export command
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export game leaderboards to CSV",
		Long:  "Query the configured leaderboard databases and write one CSV per game",
		RunE:  c.Export.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	exportCmd.Flags().StringVarP(&flags.Leaderboards, "config", "c", "", "Path to the leaderboards config file (default leaderboards.yaml)")
	exportCmd.Flags().StringVarP(&flags.Game, "game", "g", "", "Export only the named game (e.g. ff7sb, rockmanx)")
	rootCmd.AddCommand(exportCmd)

	// Card command
	cardCmd := &cobra.Command{
		Use:   "card",
		Short: "Generate a resource-card HTML snippet",
		Long:  "Open an interactive form for building a resource-card snippet, or render one non-interactively with --out",
		RunE:  c.Card.Execute,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Flags = flags.ToConfigFlags()
			return nil
		},
	}
	cardCmd.Flags().StringVar(&flags.CardName, "name", "", "Card name (drives comment and i18n key slugs)")
	cardCmd.Flags().StringVar(&flags.CardCategory, "category", "", "Category for data-category and the category pill")
	cardCmd.Flags().StringVar(&flags.CardTags, "tags", "", "Comma-separated tags; the first becomes the tag pill")
	cardCmd.Flags().StringVar(&flags.CardSearch, "search", "", "Space-separated search keywords for data-search")
	cardCmd.Flags().StringVar(&flags.CardTitle, "title", "", "Visible fallback title (defaults to the Title-Cased name)")
	cardCmd.Flags().StringVar(&flags.CardDescription, "desc", "", "Visible fallback description")
	cardCmd.Flags().StringVar(&flags.CardHref, "href", "", "Target URL for the Open button")
	cardCmd.Flags().StringVarP(&flags.CardOut, "out", "o", "", "Write the snippet to this file instead of opening the form (- for stdout)")
	cardCmd.Flags().BoolVar(&flags.NoPills, "no-pills", false, "Keep the fixed fallback pill i18n keys")
	rootCmd.AddCommand(cardCmd)
}
